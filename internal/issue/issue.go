// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidURIId Id = iota + 1
	InvalidOperationId
	PathAbsentId
	ConfigLoadFailedId
	InvalidPathStyleId
	StrictCheckFailedId
	LegacyConversionFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // reference documents for this kind of failure
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the page with glamour. stylePath is a glamour style name
// ("dark", "light", "notty", "auto") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, links := range [][]HttpLink{i.docLinks, i.extLinks} {
			for _, link := range links {
				md.WriteString("- <" + string(link) + ">\n")
			}
		}
	}
	return render(md.String(), stylePath)
}

const rfc3986 HttpLink = "https://www.rfc-editor.org/rfc/rfc3986"

var (
	render = glamour.Render

	invalidURIIssue = &Issue{
		id: InvalidURIId,
		mdMsg: `
# The text is not a valid URI

A URI needs a scheme and has to respect two rules about slashes:

- with an authority (` + "`//host`" + `), a non-empty path must start with ` + "`/`" + `
- without an authority, the path must not start with ` + "`//`" + `

## Things you can try:
- Add the scheme, e.g. ` + "`file:///tmp/x`" + ` instead of ` + "`/tmp/x`" + `
- Build file URIs from native paths instead:
~~~
$ urikit from-path /tmp/x
~~~
- Quote the URI so the shell keeps ` + "`#`, `?` and `;`",
		docLinks: []HttpLink{rfc3986 + "#section-3"},
	}

	invalidOperationIssue = &Issue{
		id: InvalidOperationId,
		mdMsg: `
# The operation does not apply to this URI

Joining a path segment needs a URI that has a path. URIs such as
` + "`mailto:`" + ` or a bare ` + "`foo:?query`" + ` have none.

## Things you can try:
- Set a path first:
~~~
$ urikit with foo:?q --set path=/base
~~~`,
	}

	pathAbsentIssue = &Issue{
		id: PathAbsentId,
		mdMsg: `
# The URI has no filesystem path

Only URIs with a path component can be converted to a filesystem path.

## Things you can try:
- Check the URI with ` + "`urikit parse`" + ` to see its components
- Note that the scheme is not checked: ` + "`untitled:notes`" + ` still yields ` + "`notes`",
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

Your configuration file has errors or could not be read.

## Things you can try:
- Write a fresh default file and compare:
~~~
$ urikit config init --print
~~~
- Check the ` + "`URIKIT_*`" + ` environment variables
- Show the effective configuration:
~~~
$ urikit config show
~~~

## Example configuration:
~~~cue
encode:     true
path_style: "auto"
output:     "text"
log_level:  "warn"
ui: verbose: false
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	invalidPathStyleIssue = &Issue{
		id: InvalidPathStyleId,
		mdMsg: `
# Unknown path style

Path styles decide how native paths map to URIs.

## Valid values:
- ` + "`auto`" + `: follow the operating system
- ` + "`posix`" + `: "/" separates, "\" is a name character
- ` + "`windows`" + `: both "\" and "/" separate, drive letters are lower-cased`,
	}

	strictCheckFailedIssue = &Issue{
		id: StrictCheckFailedId,
		mdMsg: `
# The URI is accepted but not strictly RFC 3986 compliant

urikit parses URIs leniently. ` + "`--strict`" + ` additionally validates the
encoded form against RFC 3986, which rejects things like invalid ports or
malformed IPv6 literals.

## Things you can try:
- Drop ` + "`--strict`" + ` if lenient parsing is good enough
- Fix the component named in the error message`,
		docLinks: []HttpLink{rfc3986},
	}

	legacyConversionFailedIssue = &Issue{
		id: LegacyConversionFailedId,
		mdMsg: `
# The legacy conversion produced no result

The ` + "`legacy`" + ` commands never report why they fail: malformed input
simply yields nothing.

## Things you can try:
- Run the structured command instead for a detailed error, e.g. ` + "`urikit parse`",
	}

	issues = map[Id]*Issue{
		invalidURIIssue.Id():             invalidURIIssue,
		invalidOperationIssue.Id():       invalidOperationIssue,
		pathAbsentIssue.Id():             pathAbsentIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
		invalidPathStyleIssue.Id():       invalidPathStyleIssue,
		strictCheckFailedIssue.Id():      strictCheckFailedIssue,
		legacyConversionFailedIssue.Id(): legacyConversionFailedIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, issue := range maps.Values(issues) {
		values = append(values, issue)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
