// Package javadoc extracts entities from pages produced by the standard
// Javadoc doclet (JDK 11 layout).
package javadoc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"git.home.luguber.info/inful/refdoc/internal/apidoc"
	"git.home.luguber.info/inful/refdoc/internal/discovery"
	"git.home.luguber.info/inful/refdoc/internal/extract"
	"git.home.luguber.info/inful/refdoc/internal/foundation"
	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/refdoc/internal/signature"
	"git.home.luguber.info/inful/refdoc/internal/textnorm"
)

const (
	nameSelector        = ".contentContainer .description pre .typeNameLabel"
	descriptionSelector = ".contentContainer .description pre + div"
	examplesSelector    = ".contentContainer .description pre + div pre"
	packageSelector     = ".header .subTitle"
	supertypeSelector   = ".contentContainer .description dt"

	summaryTableFmt = `.summary > ul > li > section > ul > li:has(a[id="%s"]) > table`
	detailsListFmt  = `.details > ul > li > section > ul > li:has(a[id="%s"]) > ul > li`

	methodNameSelector        = "h4"
	methodSignatureSelector   = "li.blockList > pre"
	methodDescriptionSelector = "li.blockList > pre + div"
	methodExamplesSelector    = "li.blockList > pre + div pre"
)

// paramsLabel is the definition term listing method parameters.
const paramsLabel = "Parameters:"

// Labels of definition terms that introduce supertypes.
var supertypeLabels = []string{"Superinterfaces", "All Superinterfaces", "All Implemented Interfaces"}

// DefaultFilter selects class, interface and enum pages and skips index,
// summary, tree and usage pages.
func DefaultFilter() discovery.Filter {
	return discovery.Filter{
		Include: []string{"/api/"},
		Exclude: []string{"-use", "-summary", "-tree"},
		Suffix:  ".html",
	}
}

// Extractor reads Javadoc pages.
type Extractor struct {
	filter discovery.Filter
	norm   textnorm.Normalizer
}

// New returns a Javadoc extractor that accepts paths passing filter.
func New(filter discovery.Filter) *Extractor {
	return &Extractor{
		filter: filter,
		norm:   textnorm.New(extract.DialectJavadoc.Language()),
	}
}

func (e *Extractor) Dialect() extract.Dialect { return extract.DialectJavadoc }

func (e *Extractor) Accept(path string) bool { return e.filter.Accept(path) }

// Policy is replace: every Javadoc page fully documents its entity.
func (e *Extractor) Policy() apidoc.Policy { return apidoc.PolicyReplace }

// Detect classifies a page by its title heading.
func (e *Extractor) Detect(doc *goquery.Document) (apidoc.Kind, bool) {
	switch {
	case doc.Find(`h2[title^="Interface"]`).Length() > 0:
		return apidoc.KindInterface, true
	case doc.Find(`h2[title^="Class"]`).Length() > 0:
		return apidoc.KindClass, true
	case doc.Find(`h2[title^="Enum"]`).Length() > 0:
		return apidoc.KindEnum, true
	default:
		return "", false
	}
}

// Extract builds the entity documented by doc.
func (e *Extractor) Extract(doc *goquery.Document, kind apidoc.Kind) foundation.Result[apidoc.Entity, *errors.ClassifiedError] {
	root := doc.Selection

	name := extract.FirstText(root, nameSelector, "entity name")
	if name.IsErr() {
		return extract.Fail[apidoc.Entity](name.UnwrapErr())
	}

	entity := apidoc.Entity{
		Name:        name.Unwrap(),
		Kind:        kind,
		Description: extract.Paragraphs(root.Find(descriptionSelector).First(), e.norm),
		Examples:    examples(root.Find(examplesSelector)),
		Supertypes:  supertypes(root),
		PackagePath: packagePath(root),
	}

	if kind == apidoc.KindEnum {
		constants := parseEnumConstants(root)
		if constants.IsErr() {
			return extract.Fail[apidoc.Entity](withEntity(constants.UnwrapErr(), entity.Name))
		}
		entity.EnumConstants = constants.Unwrap()
	}

	fields := parseFields(root)
	if fields.IsErr() {
		return extract.Fail[apidoc.Entity](withEntity(fields.UnwrapErr(), entity.Name))
	}
	entity.Fields = fields.Unwrap()

	for _, anchor := range []string{"constructor.detail", "method.detail"} {
		methods := e.methods(root.Find(fmt.Sprintf(detailsListFmt, anchor)))
		if methods.IsErr() {
			return extract.Fail[apidoc.Entity](withEntity(methods.UnwrapErr(), entity.Name))
		}
		entity.Methods = append(entity.Methods, methods.Unwrap()...)
	}

	return extract.Ok(entity)
}

func withEntity(err *errors.ClassifiedError, name string) *errors.ClassifiedError {
	return err.WithContext("entity", name)
}

// summaryRows returns the rows of the summary tables anchored at anchor,
// without each table's header row.
func summaryRows(root *goquery.Selection, anchor string) []*goquery.Selection {
	var rows []*goquery.Selection
	root.Find(fmt.Sprintf(summaryTableFmt, anchor)).Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(i int, tr *goquery.Selection) {
			if i > 0 {
				rows = append(rows, tr)
			}
		})
	})
	return rows
}

func parseFields(root *goquery.Selection) extract.Result[[]apidoc.Argument] {
	var out []apidoc.Argument
	for _, row := range summaryRows(root, "field.summary") {
		name := extract.FirstText(row, ".colSecond", "field name")
		if name.IsErr() {
			return extract.Fail[[]apidoc.Argument](name.UnwrapErr())
		}
		typ := extract.FirstText(row, ".colFirst", "field type")
		if typ.IsErr() {
			return extract.Fail[[]apidoc.Argument](typ.UnwrapErr().WithContext("field", name.Unwrap()))
		}
		out = append(out, apidoc.Argument{
			Name:        name.Unwrap(),
			Type:        foundation.Some(typ.Unwrap()),
			Description: extract.OptionalText(row, ".colLast"),
		})
	}
	return extract.Ok(out)
}

func parseEnumConstants(root *goquery.Selection) extract.Result[[]apidoc.EnumConstant] {
	var out []apidoc.EnumConstant
	for _, row := range summaryRows(root, "enum.constant.summary") {
		name := extract.FirstText(row, ".colFirst", "enum constant name")
		if name.IsErr() {
			return extract.Fail[[]apidoc.EnumConstant](name.UnwrapErr())
		}
		out = append(out, apidoc.EnumConstant{Name: name.Unwrap()})
	}
	return extract.Ok(out)
}

func (e *Extractor) methods(items *goquery.Selection) extract.Result[[]apidoc.Method] {
	results := make([]extract.Result[apidoc.Method], 0, items.Length())
	for i := range items.Length() {
		results = append(results, e.method(items.Eq(i)))
	}
	return foundation.Collect(results)
}

func (e *Extractor) method(item *goquery.Selection) extract.Result[apidoc.Method] {
	name := extract.FirstText(item, methodNameSelector, "method name")
	if name.IsErr() {
		return extract.Fail[apidoc.Method](name.UnwrapErr())
	}
	sig := extract.FirstText(item, methodSignatureSelector, "method signature")
	if sig.IsErr() {
		return extract.Fail[apidoc.Method](sig.UnwrapErr().WithContext("method", name.Unwrap()))
	}

	rawSig := sig.Unwrap()
	args := e.arguments(item, name.Unwrap(), signature.Params(rawSig))
	if args.IsErr() {
		return extract.Fail[apidoc.Method](args.UnwrapErr())
	}

	return extract.Ok(apidoc.Method{
		Name:        name.Unwrap(),
		Signature:   signature.Clean(rawSig),
		Description: extract.Paragraphs(item.Find(methodDescriptionSelector).First(), e.norm),
		Args:        args.Unwrap(),
		ReturnType:  foundation.NonEmpty(signature.ReturnType(rawSig)),
		Examples:    examples(item.Find(methodExamplesSelector)),
	})
}

// arguments reads the definitions listed under the "Parameters:" term. A
// definition belongs to it until the next term starts. "Type Parameters:"
// carries the same label class and is skipped.
func (e *Extractor) arguments(item *goquery.Selection, method string, declared map[string]string) extract.Result[[]apidoc.Argument] {
	var defs []*goquery.Selection
	item.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		inParams := false
		dl.Children().Each(func(_ int, c *goquery.Selection) {
			switch {
			case c.Is("dt"):
				inParams = extract.Text(c.Find(".paramLabel")) == paramsLabel
			case c.Is("dd") && inParams:
				defs = append(defs, c)
			}
		})
	})

	var out []apidoc.Argument
	for _, dd := range defs {
		name := extract.FirstText(dd, "code", "parameter name")
		if name.IsErr() {
			return extract.Fail[[]apidoc.Argument](name.UnwrapErr().WithContext("method", method))
		}
		typ, ok := declared[name.Unwrap()]
		if !ok {
			return extract.Fail[[]apidoc.Argument](errors.ConsistencyError("documented parameter missing from signature").
				WithContext("method", method).
				WithContext("parameter", name.Unwrap()).
				Build())
		}

		desc := extract.InnerHTML(dd)
		if _, after, found := strings.Cut(desc, " - "); found {
			desc = after
		}
		out = append(out, apidoc.Argument{
			Name:        name.Unwrap(),
			Type:        foundation.NonEmpty(typ),
			Description: foundation.NonEmpty(strings.TrimSpace(e.norm.Normalize(desc))),
		})
	}
	return extract.Ok(out)
}

func examples(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, pre *goquery.Selection) {
		if ex := strings.TrimSpace(textnorm.ReplaceSpaces(pre.Text())); ex != "" {
			out = append(out, ex)
		}
	})
	return out
}

func supertypes(root *goquery.Selection) []string {
	var out []string
	extract.ContainsText(root.Find(supertypeSelector), false, supertypeLabels...).Each(func(_ int, dt *goquery.Selection) {
		out = append(out, extract.Texts(dt.NextFiltered("dd").Find("code"))...)
	})
	return out
}

// packagePath reads the package subtitle. Modular builds print the module
// subtitle first.
func packagePath(root *goquery.Selection) foundation.Option[string] {
	link := root.Find(packageSelector).Last().Find("a").First()
	if link.Length() == 0 {
		return foundation.None[string]()
	}
	return foundation.NonEmpty(extract.Text(link))
}
