package game

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pixil98/deepmud/internal/display"
)

// roomTemplate is the "look" layout. Empty sections render as a bare
// heading, matching the classic fixed-section room card.
var roomTemplate = template.Must(template.New("room").Funcs(sprig.TxtFuncMap()).Parse(
	`ROOM: {{ .Description }}

ITEMS:
{{ range .Items }}
	{{ . }}
{{- end }}

PEOPLE:
{{ range .People }}
	{{ . }}
{{- end }}

EXITS:
{{ range .Exits }}
	{{ . }}
{{- end }}
`))

type roomView struct {
	Description string
	Items       []string
	People      []string
	Exits       []string
}

// DescribeRoom renders the viewer's current room: description, the
// item pool with catalogue descriptions, the other people present
// with knocked-out tags, and the exits with lock state as the viewer
// would find them right now.
func (w *World) DescribeRoom(viewer *Body) string {
	rs := w.Room(viewer.RoomId)
	if rs == nil {
		return "What have you done!?"
	}

	view := roomView{Description: rs.Def.Description}

	itemIds := make([]string, 0, len(rs.Items))
	for itemId := range rs.Items {
		itemIds = append(itemIds, itemId)
	}
	sort.Strings(itemIds)
	for _, itemId := range itemIds {
		view.Items = append(view.Items, fmt.Sprintf("%d %s - %s",
			rs.Items.Count(itemId), itemId, w.Catalog.Describe(itemId)))
	}

	for _, b := range w.BodiesIn(viewer.RoomId) {
		if b.Id == viewer.Id {
			continue
		}
		tag := ""
		if b.KnockedOut() {
			tag = " (KNOCKED OUT)"
		}
		view.People = append(view.People, b.Id+tag)
	}

	dirs := make([]string, 0, len(rs.Def.Exits))
	for dir := range rs.Def.Exits {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		tag := ""
		if !w.ExitOpen(viewer, rs, dir) {
			tag = " (LOCKED)"
		}
		view.Exits = append(view.Exits, dir+tag)
	}

	var buf bytes.Buffer
	if err := roomTemplate.Execute(&buf, view); err != nil {
		return rs.Def.Description
	}

	return display.Wrap(buf.String())
}
