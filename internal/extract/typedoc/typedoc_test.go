package typedoc

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/refdoc/internal/apidoc"
	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
)

const classPage = `<!DOCTYPE html>
<html class="default no-js">
<body>
<div class="container container-main">
<div class="col-content">
<div class="tsd-page-title">
<ul class="tsd-breadcrumb"><li><a href="../modules.html">typedb-client</a></li></ul>
<h1>Class TypeDBClientImpl</h1>
</div>
<section class="tsd-panel tsd-comment">
<div class="tsd-comment tsd-typography"><p>Client for a <code>TypeDB</code> server.</p><p>Create one per application.</p></div>
</section>
<section class="tsd-panel tsd-hierarchy">
<h4>Hierarchy</h4>
<ul class="tsd-hierarchy">
<li><span class="tsd-signature-type">TypeDBClient</span>
<ul class="tsd-hierarchy"><li><span class="target">TypeDBClientImpl</span></li></ul>
</li>
</ul>
</section>
<section class="tsd-panel-group tsd-member-group">
<h2>Constructors</h2>
<section class="tsd-panel tsd-member tsd-kind-constructor">
<a id="constructor" class="tsd-anchor"></a>
<h3 class="tsd-anchor-link">constructor</h3>
<ul class="tsd-signatures tsd-kind-constructor">
<li class="tsd-signature tsd-anchor-link" id="constructor.new_TypeDBClientImpl"><span class="tsd-kind-constructor-signature">new TypeDBClient<wbr/>Impl</span><span class="tsd-signature-symbol">(</span><span class="tsd-kind-parameter">address</span><span class="tsd-signature-symbol">: </span><span class="tsd-signature-type">string</span><span class="tsd-signature-symbol">)</span></li>
<li class="tsd-description">
<div class="tsd-parameters">
<h4 class="tsd-parameters-title">Parameters</h4>
<ul class="tsd-parameter-list">
<li><h5><span class="tsd-kind-parameter">address</span>: <span class="tsd-signature-type">string</span></h5>
<div class="tsd-comment tsd-typography"><p>Server <em>address</em></p></div></li>
</ul>
</div>
<h4 class="tsd-returns-title">Returns <span class="tsd-signature-type">TypeDBClientImpl</span></h4>
</li>
</ul>
</section>
</section>
<section class="tsd-panel-group tsd-member-group">
<h2>Properties</h2>
<section class="tsd-panel tsd-member tsd-kind-property">
<a id="isOpen" class="tsd-anchor"></a>
<h3 class="tsd-anchor-link">isOpen</h3>
<div class="tsd-signature"><span class="tsd-kind-property">isOpen</span><span class="tsd-signature-symbol">:</span> <span class="tsd-signature-type">boolean</span></div>
<div class="tsd-comment tsd-typography"><p>Whether the client is open.</p></div>
</section>
<section class="tsd-panel tsd-member tsd-kind-property tsd-is-private">
<h3 class="tsd-anchor-link">_rpc</h3>
<div class="tsd-signature"><span class="tsd-kind-property">_rpc</span></div>
</section>
</section>
<section class="tsd-panel-group tsd-member-group">
<h2>Accessors</h2>
<section class="tsd-panel tsd-member tsd-kind-accessor">
<h3 class="tsd-anchor-link">databases</h3>
<ul class="tsd-signatures tsd-kind-accessor">
<li class="tsd-signature" id="databases.databases-1"><span class="tsd-signature-symbol">get</span> databases<span class="tsd-signature-symbol">(</span><span class="tsd-signature-symbol">)</span>: <span class="tsd-signature-type">DatabaseManager</span></li>
<li class="tsd-description">
<div class="tsd-comment tsd-typography"><p>The database manager.</p></div>
<h4 class="tsd-returns-title">Returns <span class="tsd-signature-type">DatabaseManager</span></h4>
</li>
</ul>
</section>
</section>
<section class="tsd-panel-group tsd-member-group">
<h2>Methods</h2>
<section class="tsd-panel tsd-member tsd-kind-method">
<h3 class="tsd-anchor-link">session</h3>
<ul class="tsd-signatures tsd-kind-method">
<li class="tsd-signature tsd-anchor-link"><span class="tsd-kind-call-signature">session</span><span class="tsd-signature-symbol">(</span><span class="tsd-kind-parameter">database</span><span class="tsd-signature-symbol">: </span><span class="tsd-signature-type">string</span><span class="tsd-signature-symbol">)</span><span class="tsd-signature-symbol">: </span><span class="tsd-signature-type">Promise</span><span class="tsd-signature-symbol">&lt;</span><span class="tsd-signature-type">TypeDBSession</span><span class="tsd-signature-symbol">&gt;</span></li>
<li class="tsd-description">
<div class="tsd-comment tsd-typography"><p>Opens a session.</p><h3><a id="examples" class="tsd-anchor" href="#examples">Examples</a></h3><pre><code class="language-ts">client.session(db)</code><button>Copy</button></pre></div>
<div class="tsd-parameters">
<h4 class="tsd-parameters-title">Parameters</h4>
<ul class="tsd-parameter-list">
<li><h5><span class="tsd-kind-parameter">database</span>: <span class="tsd-signature-type">string</span></h5></li>
</ul>
</div>
<h4 class="tsd-returns-title">Returns <span class="tsd-signature-type">Promise</span><span class="tsd-signature-symbol">&lt;</span><span class="tsd-signature-type">TypeDBSession</span><span class="tsd-signature-symbol">&gt;</span></h4>
</li>
</ul>
</section>
<section class="tsd-panel tsd-member tsd-kind-method">
<h3 class="tsd-anchor-link">proto</h3>
<ul class="tsd-signatures tsd-kind-method">
<li class="tsd-signature"><span class="tsd-kind-call-signature">proto</span><span class="tsd-signature-symbol">()</span></li>
<li class="tsd-description"></li>
</ul>
</section>
</section>
</div>
</div>
</body>
</html>`

const namespacePage = `<html><body>
<div class="tsd-page-title"><h1>Namespace Options</h1></div>
<section class="tsd-panel tsd-comment"><div class="tsd-comment tsd-typography"><p>Options namespace.</p></div></section>
<section class="tsd-panel-group tsd-index-group">
<h3 class="tsd-index-heading">Variables</h3>
<div class="tsd-index-list"><a href="#DEFAULT" class="tsd-index-link">DEFAULT</a><a href="#CORE" class="tsd-index-link">CORE</a></div>
</section>
</body></html>`

func parse(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestDetect(t *testing.T) {
	x := New(DefaultFilter())

	kind, ok := x.Detect(parse(t, classPage))
	require.True(t, ok)
	require.Equal(t, apidoc.KindClass, kind)

	kind, ok = x.Detect(parse(t, namespacePage))
	require.True(t, ok)
	require.Equal(t, apidoc.KindNamespace, kind)

	kind, ok = x.Detect(parse(t, `<div class="tsd-page-title"><h1>Interface Database</h1></div>`))
	require.True(t, ok)
	require.Equal(t, apidoc.KindInterface, kind)

	_, ok = x.Detect(parse(t, `<html><body><p>search</p></body></html>`))
	require.False(t, ok)
}

func TestDetect_KindFromLeadingWord(t *testing.T) {
	x := New(DefaultFilter())

	tests := []struct {
		title string
		want  apidoc.Kind
	}{
		{title: "Class InterfaceBuilder", want: apidoc.KindClass},
		{title: "Interface ClassLoaderOptions", want: apidoc.KindInterface},
		{title: "Namespace ClassNames", want: apidoc.KindNamespace},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			kind, ok := x.Detect(parse(t, `<div class="tsd-page-title"><h1>`+tt.title+`</h1></div>`))
			require.True(t, ok)
			require.Equal(t, tt.want, kind)
		})
	}
}

func TestExtract_Class(t *testing.T) {
	res := New(DefaultFilter()).Extract(parse(t, classPage), apidoc.KindClass)
	require.True(t, res.IsOk())
	e := res.Unwrap()

	require.Equal(t, "TypeDBClientImpl", e.Name)
	require.Equal(t, []string{"Client for a `TypeDB` server.", "Create one per application."}, e.Description)
	require.Equal(t, []string{"TypeDBClient"}, e.Supertypes)

	require.Len(t, e.Fields, 1)
	require.Equal(t, "isOpen", e.Fields[0].Name)
	require.Equal(t, "boolean", e.Fields[0].Type.Unwrap())
	require.Equal(t, "Whether the client is open.", e.Fields[0].Description.Unwrap())

	var names []string
	for _, m := range e.Methods {
		names = append(names, m.Name)
	}
	require.Equal(t, []string{"new TypeDBClientImpl", "session", "databases"}, names)

	ctor := e.Methods[0]
	require.Equal(t, []string{"address"}, ctor.ArgNames())
	require.Equal(t, "string", ctor.Args[0].Type.Unwrap())
	require.Equal(t, "Server _address_", ctor.Args[0].Description.Unwrap())
	require.Equal(t, "TypeDBClientImpl", ctor.ReturnType.Unwrap())

	session := e.Methods[1]
	require.Equal(t, "Promise<TypeDBSession>", session.ReturnType.Unwrap())
	require.Equal(t, []string{"Opens a session."}, session.Description)
	require.Equal(t, []string{"client.session(db)"}, session.Examples)
	require.True(t, session.Args[0].Description.IsNone())
	require.Contains(t, session.Signature, "session(database: string)")

	accessor := e.Methods[2]
	require.Empty(t, accessor.Args)
	require.Equal(t, "DatabaseManager", accessor.ReturnType.Unwrap())
	require.Equal(t, []string{"The database manager."}, accessor.Description)
}

func TestExtract_Namespace(t *testing.T) {
	res := New(DefaultFilter()).Extract(parse(t, namespacePage), apidoc.KindNamespace)
	require.True(t, res.IsOk())
	e := res.Unwrap()

	require.Equal(t, "Options", e.Name)
	require.Equal(t, []string{"Options namespace."}, e.Description)
	require.Equal(t, []apidoc.EnumConstant{{Name: "DEFAULT"}, {Name: "CORE"}}, e.EnumConstants)
}

func TestExtract_MissingName(t *testing.T) {
	page := strings.Replace(namespacePage, "<h1>Namespace Options</h1>", "<h1>Namespace</h1>", 1)

	res := New(DefaultFilter()).Extract(parse(t, page), apidoc.KindNamespace)
	require.True(t, res.IsErr())
	require.Equal(t, errors.CategoryExtraction, res.UnwrapErr().Category())
}

func TestExtract_MissingParameterName(t *testing.T) {
	page := strings.Replace(classPage, `<h5><span class="tsd-kind-parameter">database</span>`, "<h5>database", 1)

	res := New(DefaultFilter()).Extract(parse(t, page), apidoc.KindClass)
	require.True(t, res.IsErr())
	method, _ := res.UnwrapErr().Context().GetString("method")
	require.Equal(t, "session", method)
}

func TestAccept(t *testing.T) {
	x := New(DefaultFilter())
	require.True(t, x.Accept("docs/classes/TypeDBClientImpl.html"))
	require.True(t, x.Accept("docs/modules/Options.html"))
	require.False(t, x.Accept("docs/index.html"))
	require.False(t, x.Accept("docs/classes/style.css"))
	require.Equal(t, apidoc.PolicyMerge, x.Policy())
}
