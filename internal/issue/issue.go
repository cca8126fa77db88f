// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	CableDirInvalidId
	ChannelParseErrorId
	DocsWriteFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

Your cabledoc config file exists but could not be read or parsed.

## Things you can try:
- Check the file for TOML syntax errors
- Regenerate a default config:
~~~
$ cabledoc config init
~~~
- See where the config is read from:
~~~
$ cabledoc config path
~~~`,
	}

	cableDirInvalidIssue = &Issue{
		id: CableDirInvalidId,
		mdMsg: `
# Cable directory is not usable!

The configured cable directory either cannot be created or an entry on its
path exists but is not a directory.

## Things you can try:
- Check what occupies the path (a plain file with the same name?)
- Check directory permissions
- Point cabledoc somewhere else:
~~~toml
cable_dir = "path/to/cable"
~~~`,
	}

	channelParseErrorIssue = &Issue{
		id: ChannelParseErrorId,
		mdMsg: `
# A channel definition is malformed!

Documentation for the affected OS family was NOT written, so the previous
document (if any) is left untouched.

## Every definition needs:
~~~toml
[metadata]
name = "My Channel"
description = "What this channel provides"
# optional:
requirements = ["curl"]
~~~

## Things you can try:
- Fix the file named in the error above
- Check all definitions at once:
~~~
$ cabledoc validate
~~~`,
	}

	docsWriteFailedIssue = &Issue{
		id: DocsWriteFailedId,
		mdMsg: `
# Documentation could not be written!

The rendered document could not be saved to the docs directory.

## Things you can try:
- Check that the docs directory is writable
- Check free disk space
- Point cabledoc at a writable location:
~~~toml
docs_dir = "path/to/docs"
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		cableDirInvalidIssue.Id():    cableDirInvalidIssue,
		channelParseErrorIssue.Id():  channelParseErrorIssue,
		docsWriteFailedIssue.Id():    docsWriteFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
