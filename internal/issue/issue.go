// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	LocParseFailedId Id = iota + 1
	LocJoinFailedId
	LocRelativizeFailedId
	PatternInvalidId
	RefinedOutOfRangeId
	ConfigLoadFailedId
	FileReadFailedId
	FileWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // optional links to project documentation pages
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

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	locParseFailedIssue = &Issue{
		id: LocParseFailedId,
		mdMsg: `
# Location did not match the requested shape!

The path string decoded fine, but not as the variant you asked for
(absolute vs relative, file vs directory).

## How locations are classified:
- A leading ` + "`/`" + ` makes a location **absolute**; anything else is **relative**
- A trailing ` + "`/`" + `, or a last segment without a dot, makes it a **directory**
- A last segment containing a dot makes it a **file**

## Things you can try:
- Inspect how the string actually decodes:
~~~
$ corekit path inspect ./src/utils
~~~

- Add a trailing slash to force a directory reading:
~~~
$ corekit path inspect ./archive.tar.gz/
~~~

- Use the total decoder in code (fsloc.Decode) when any shape is
  acceptable, and the variant decoders only at trust boundaries.`,
	}

	locJoinFailedIssue = &Issue{
		id: LocJoinFailedId,
		mdMsg: `
# Cannot join these locations!

Join requires a **directory** base and a **relative** operand.

## Common causes:
- The base is a file location (` + "`/src/main.go`" + ` instead of ` + "`/src/`" + `)
- The operand is absolute (` + "`/etc/passwd`" + ` cannot be appended to anything)

## Things you can try:
- Join onto the file's parent instead:
~~~
$ corekit path join /src/app/ ../lib/util.ts
~~~

- Check both shapes first:
~~~
$ corekit path inspect /src/app/
$ corekit path inspect ../lib/util.ts
~~~`,
	}

	locRelativizeFailedIssue = &Issue{
		id: LocRelativizeFailedId,
		mdMsg: `
# Cannot compute a relative path!

Relativizing needs two locations with the same anchor, and the base
must be a directory.

## Things you can try:
- Make sure both locations are absolute, or both relative:
~~~
$ corekit path rel /home/user/ /home/user/docs/note.txt
~~~

- A relative base with leading ` + "`..`" + ` segments may not reach the
  target; anchor both locations first with ` + "`path join`" + `.`,
	}

	patternInvalidIssue = &Issue{
		id: PatternInvalidId,
		mdMsg: `
# Invalid glob pattern!

The match pattern could not be compiled.

## Supported syntax:
- ` + "`*`" + ` matches any run of characters within one segment
- ` + "`**`" + ` matches across segment boundaries
- ` + "`?`" + ` matches a single character
- ` + "`[abc]`" + ` and ` + "`{a,b}`" + ` character and alternative groups

## Common mistakes:
- Unclosed ` + "`[`" + ` or ` + "`{`" + ` groups
- Escaping with backslash on Windows-style paths; patterns always use ` + "`/`" + `

## Example:
~~~
$ corekit path match '/src/**/*.go' /src/app/main.go
~~~`,
	}

	refinedOutOfRangeIssue = &Issue{
		id: RefinedOutOfRangeId,
		mdMsg: `
# Value rejected by its refinement!

The number you supplied does not satisfy the brand's predicate.

## Available brands:
- **positive** (> 0), **non-negative** (>= 0), **non-zero**
- **whole** (no fractional part), **even**, **odd**, **natural** (>= 1)
- **percent** (0 to 100), **port** (1 to 65535)

## Things you can try:
- Check a value against a brand:
~~~
$ corekit num percent 150
~~~

- In code, prefer the comma-ok constructor when rejection is expected:
~~~go
p, ok := refined.TryPercent(v)
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the corekit configuration file.

## Configuration file locations:
- Linux: ~/.config/corekit/config.toml
- macOS: ~/Library/Application Support/corekit/config.toml
- Windows: %APPDATA%\corekit\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ corekit config init
~~~

- Check the TOML syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/corekit/config.toml
~~~

## Example configuration:
~~~toml
[ui]
color_scheme = "auto"
output_format = "text"
verbose = false
~~~`,
	}

	fileReadFailedIssue = &Issue{
		id: FileReadFailedId,
		mdMsg: `
# Failed to read file!

The file could not be read from disk.

## Common causes:
- The file does not exist at the given path
- Permission denied
- The location decodes as a directory, not a file

## Things you can try:
- Check the location's shape:
~~~
$ corekit path inspect ./data/input.txt
~~~

- Check permissions and that the file exists:
~~~
$ ls -l ./data/input.txt
~~~`,
	}

	fileWriteFailedIssue = &Issue{
		id: FileWriteFailedId,
		mdMsg: `
# Failed to write file!

The file could not be written to disk.

## Common causes:
- Permission denied on the target directory
- The disk is full
- The location decodes as a directory, not a file

## Things you can try:
- Check write permission on the parent directory
- Parent directories are created automatically, so a missing
  directory chain is not the cause`,
	}

	issues = map[Id]*Issue{
		locParseFailedIssue.Id():      locParseFailedIssue,
		locJoinFailedIssue.Id():       locJoinFailedIssue,
		locRelativizeFailedIssue.Id(): locRelativizeFailedIssue,
		patternInvalidIssue.Id():      patternInvalidIssue,
		refinedOutOfRangeIssue.Id():   refinedOutOfRangeIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		fileReadFailedIssue.Id():      fileReadFailedIssue,
		fileWriteFailedIssue.Id():     fileWriteFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
