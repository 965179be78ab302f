// Package typedoc extracts entities from pages produced by TypeDoc's default theme.
//
// TypeDoc documents a namespace across several pages, so entities are merged
// by name rather than replaced.
package typedoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"git.home.luguber.info/inful/refdoc/internal/apidoc"
	"git.home.luguber.info/inful/refdoc/internal/discovery"
	"git.home.luguber.info/inful/refdoc/internal/extract"
	"git.home.luguber.info/inful/refdoc/internal/foundation"
	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/refdoc/internal/textnorm"
)

const (
	titleSelector       = ".tsd-page-title h1"
	descriptionSelector = ".tsd-page-title + section.tsd-comment div.tsd-comment p"
	hierarchySelector   = "ul.tsd-hierarchy li:has(ul.tsd-hierarchy span.target)"
	memberGroupSelector = ".tsd-member-group"
	indexHeadingSel     = ".tsd-index-heading"

	propertySelector     = "section.tsd-member:not(.tsd-is-private)"
	propertyNameSelector = ".tsd-signature span.tsd-kind-property"
	propertyTypeSelector = ".tsd-signature .tsd-signature-type"
	propertyDescSelector = ".tsd-signature + .tsd-comment"

	signatureSelector        = "section.tsd-member > .tsd-signatures > .tsd-signature"
	signatureNameSelector    = ".tsd-kind-call-signature, .tsd-kind-constructor-signature"
	returnsSelector          = ".tsd-returns-title > *"
	methodDescSelector       = ".tsd-description > .tsd-comment p"
	methodExamplesSelector   = `.tsd-description > .tsd-comment > :has(a[href*="examples"]) + pre > :not(button)`
	parameterSelector        = ".tsd-description .tsd-parameters .tsd-parameter-list > li"
	parameterNameSelector    = ".tsd-kind-parameter"
	parameterTypeSelector    = ".tsd-signature-type"
	parameterCommentSelector = ".tsd-comment"
)

// DefaultFilter selects class, interface and module pages.
func DefaultFilter() discovery.Filter {
	return discovery.Filter{
		Include: []string{"/classes/", "/interfaces/", "/modules/"},
		Suffix:  ".html",
	}
}

// Extractor reads TypeDoc pages.
type Extractor struct {
	filter discovery.Filter
	norm   textnorm.Normalizer
}

// New returns a TypeDoc extractor that accepts paths passing filter.
func New(filter discovery.Filter) *Extractor {
	return &Extractor{
		filter: filter,
		norm:   textnorm.New(extract.DialectTypeDoc.Language()),
	}
}

func (e *Extractor) Dialect() extract.Dialect { return extract.DialectTypeDoc }

func (e *Extractor) Accept(path string) bool { return e.filter.Accept(path) }

func (e *Extractor) Policy() apidoc.Policy { return apidoc.PolicyMerge }

// Detect classifies a page by the first word of its title. Every titled page
// that is not a class or interface documents a namespace.
func (e *Extractor) Detect(doc *goquery.Document) (apidoc.Kind, bool) {
	title := doc.Find(titleSelector)
	if title.Length() == 0 {
		return "", false
	}
	var first string
	if words := strings.Fields(title.Text()); len(words) > 0 {
		first = words[0]
	}
	switch first {
	case "Interface":
		return apidoc.KindInterface, true
	case "Class":
		return apidoc.KindClass, true
	default:
		return apidoc.KindNamespace, true
	}
}

// Extract builds the entity documented by doc.
func (e *Extractor) Extract(doc *goquery.Document, kind apidoc.Kind) foundation.Result[apidoc.Entity, *errors.ClassifiedError] {
	root := doc.Selection

	name := entityName(root)
	if name.IsErr() {
		return extract.Fail[apidoc.Entity](name.UnwrapErr())
	}

	entity := apidoc.Entity{
		Name:        name.Unwrap(),
		Kind:        kind,
		Description: e.paragraphs(root.Find(descriptionSelector)),
	}

	if kind == apidoc.KindNamespace {
		entity.EnumConstants = variables(root)
		return extract.Ok(entity)
	}

	entity.Supertypes = supertypes(root)

	props := properties(groups(root, "Properties"))
	if props.IsErr() {
		return extract.Fail[apidoc.Entity](props.UnwrapErr().WithContext("entity", entity.Name))
	}
	entity.Fields = props.Unwrap()

	methods := e.methods(groups(root, "Constructors", "Method"))
	if methods.IsErr() {
		return extract.Fail[apidoc.Entity](methods.UnwrapErr().WithContext("entity", entity.Name))
	}
	accessors := e.accessors(groups(root, "Accessors"))
	if accessors.IsErr() {
		return extract.Fail[apidoc.Entity](accessors.UnwrapErr().WithContext("entity", entity.Name))
	}
	entity.Methods = append(methods.Unwrap(), accessors.Unwrap()...)

	return extract.Ok(entity)
}

// entityName is the second word of the page title, e.g. "Class TypeDBClient".
func entityName(root *goquery.Selection) extract.Result[string] {
	return foundation.FlatMap(extract.FirstText(root, titleSelector, "page title"), func(title string) extract.Result[string] {
		words := strings.Fields(title)
		if len(words) < 2 {
			return extract.Fail[string](extract.Missing("entity name", titleSelector).WithContext("title", title))
		}
		return extract.Ok(words[1])
	})
}

// groups returns the member groups whose heading mentions any of words.
func groups(root *goquery.Selection, words ...string) *goquery.Selection {
	return root.Find(memberGroupSelector).FilterFunction(func(_ int, g *goquery.Selection) bool {
		return extract.ContainsText(g.Find("h2").First(), true, words...).Length() > 0
	})
}

func (e *Extractor) paragraphs(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(e.norm.Normalize(extract.InnerHTML(p))); text != "" {
			out = append(out, text)
		}
	})
	return out
}

func supertypes(root *goquery.Selection) []string {
	var out []string
	root.Find(hierarchySelector).Each(func(_ int, li *goquery.Selection) {
		out = append(out, extract.Text(li.Children().First()))
	})
	return out
}

func variables(root *goquery.Selection) []apidoc.EnumConstant {
	var out []apidoc.EnumConstant
	headings := extract.ContainsText(root.Find(indexHeadingSel), true, "Variables")
	headings.NextFiltered(".tsd-index-list").Find("a").Each(func(_ int, a *goquery.Selection) {
		out = append(out, apidoc.EnumConstant{Name: extract.Text(a)})
	})
	return out
}

func properties(sel *goquery.Selection) extract.Result[[]apidoc.Argument] {
	var out []apidoc.Argument
	members := sel.Find(propertySelector)
	for i := range members.Length() {
		member := members.Eq(i)
		name := extract.FirstText(member, propertyNameSelector, "property name")
		if name.IsErr() {
			return extract.Fail[[]apidoc.Argument](name.UnwrapErr())
		}
		out = append(out, apidoc.Argument{
			Name:        name.Unwrap(),
			Type:        extract.OptionalText(member, propertyTypeSelector),
			Description: extract.OptionalText(member, propertyDescSelector),
		})
	}
	return extract.Ok(out)
}

func (e *Extractor) methods(sel *goquery.Selection) extract.Result[[]apidoc.Method] {
	var out []apidoc.Method
	sigs := sel.Find(signatureSelector)
	for i := range sigs.Length() {
		sig := sigs.Eq(i)
		name := extract.FirstText(sig, signatureNameSelector, "method name")
		if name.IsErr() {
			return extract.Fail[[]apidoc.Method](name.UnwrapErr())
		}
		if name.Unwrap() == "proto" {
			continue
		}
		m := e.method(sig, name.Unwrap(), true)
		if m.IsErr() {
			return extract.Fail[[]apidoc.Method](m.UnwrapErr())
		}
		out = append(out, m.Unwrap())
	}
	return extract.Ok(out)
}

// accessors reads getters and setters. They are named by the signature's
// own text and carry no arguments.
func (e *Extractor) accessors(sel *goquery.Selection) extract.Result[[]apidoc.Method] {
	var out []apidoc.Method
	sigs := sel.Find(signatureSelector)
	for i := range sigs.Length() {
		sig := sigs.Eq(i)
		name := extract.OwnText(sig)
		if name == "" {
			return extract.Fail[[]apidoc.Method](extract.Missing("accessor name", signatureSelector))
		}
		m := e.method(sig, name, false)
		if m.IsErr() {
			return extract.Fail[[]apidoc.Method](m.UnwrapErr())
		}
		out = append(out, m.Unwrap())
	}
	return extract.Ok(out)
}

// method reads the details element that follows a signature.
func (e *Extractor) method(sig *goquery.Selection, name string, withArgs bool) extract.Result[apidoc.Method] {
	details := sig.Next()
	if details.Length() == 0 {
		return extract.Fail[apidoc.Method](extract.Missing("method details", ".tsd-signature + *").WithContext("method", name))
	}

	m := apidoc.Method{
		Name:        name,
		Signature:   extract.Text(sig),
		Description: e.paragraphs(details.Find(methodDescSelector)),
		ReturnType:  foundation.NonEmpty(strings.Join(extract.Texts(details.Find(returnsSelector)), "")),
		Examples:    codeExamples(details.Find(methodExamplesSelector)),
	}
	if !withArgs {
		return extract.Ok(m)
	}

	params := details.Find(parameterSelector)
	for i := range params.Length() {
		param := params.Eq(i)
		pname := extract.FirstText(param, parameterNameSelector, "parameter name")
		if pname.IsErr() {
			return extract.Fail[apidoc.Method](pname.UnwrapErr().WithContext("method", name))
		}
		arg := apidoc.Argument{
			Name: pname.Unwrap(),
			Type: extract.OptionalText(param, parameterTypeSelector),
		}
		if comment := param.Find(parameterCommentSelector).First(); comment.Length() > 0 {
			arg.Description = foundation.NonEmpty(strings.TrimSpace(e.norm.Normalize(extract.InnerHTML(comment))))
		}
		m.Args = append(m.Args, arg)
	}
	return extract.Ok(m)
}

func codeExamples(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, code *goquery.Selection) {
		if ex := strings.TrimSpace(textnorm.ReplaceSpaces(code.Text())); ex != "" {
			out = append(out, ex)
		}
	})
	return out
}
