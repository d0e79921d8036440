package terminal

import (
	"fmt"

	"github.com/pixil98/go-rotsim/internal/sim"
	"github.com/pixil98/go-rotsim/internal/skill"
	"github.com/rivo/tview"
)

// view draws a controller's output into tview widgets. Its methods run on
// the control goroutine and hand every change to the UI goroutine.
type view struct {
	app *tview.Application

	// update runs fn on the UI goroutine and redraws.
	update func(fn func())

	status  *tview.TextView
	skills  *tview.Table
	actions *tview.TextView
	events  *tview.TextView
	footer  *tview.TextView

	// ids and mode belong to the UI goroutine.
	ids  []string
	mode sim.TickMode
}

func newView(app *tview.Application) *view {
	v := &view{
		app:     app,
		status:  tview.NewTextView().SetDynamicColors(true),
		skills:  tview.NewTable().SetSelectable(true, false),
		actions: logView(),
		events:  logView(),
		footer:  tview.NewTextView().SetDynamicColors(true),
	}

	v.update = func(fn func()) {
		app.QueueUpdateDraw(fn)
	}

	v.status.SetBorder(true).SetTitle(" Status ")
	v.skills.SetBorder(true).SetTitle(" Skills ")
	v.actions.SetBorder(true).SetTitle(" Actions ")
	v.events.SetBorder(true).SetTitle(" Events ")

	return v
}

func logView() *tview.TextView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetChangedFunc(func() {
		tv.ScrollToEnd()
	})
	return tv
}

// layout puts the widgets on screen: status and skills on top, the two logs
// below, the key help at the bottom.
func (v *view) layout() tview.Primitive {
	top := tview.NewFlex().
		AddItem(v.status, 0, 3, false).
		AddItem(v.skills, 32, 0, true)
	logs := tview.NewFlex().
		AddItem(v.actions, 0, 1, false).
		AddItem(v.events, 0, 1, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 3, true).
		AddItem(logs, 0, 2, false).
		AddItem(v.footer, 1, 0, false)
}

func (v *view) AppendLogEntry(e sim.LogEntry) {
	target := v.actions
	if e.Category == sim.CategoryEvent {
		target = v.events
	}
	line := entryLine(e)
	v.update(func() {
		fmt.Fprintln(target, line)
	})
}

func (v *view) RenderStatus(st sim.Status) {
	text := statusText(st)
	v.update(func() {
		v.status.SetText(text)
	})
}

func (v *view) RenderSkillButtons(buttons []skill.Availability) {
	v.update(func() {
		v.ids = v.ids[:0]
		for i, b := range buttons {
			text, color := skillCell(i+1, b)
			v.skills.SetCell(i, 0, tview.NewTableCell(text).SetTextColor(color).SetExpansion(1))
			v.ids = append(v.ids, b.Skill)
		}
		for r := v.skills.GetRowCount() - 1; r >= len(buttons); r-- {
			v.skills.RemoveRow(r)
		}
	})
}

func (v *view) NotifyRealTimeRunning(running bool) {
	v.update(func() {
		v.footer.SetText(footerText(v.mode, running))
	})
}

// setMode updates the key help for a new tick mode.
func (v *view) setMode(mode sim.TickMode, running bool) {
	v.update(func() {
		v.mode = mode
		v.footer.SetText(footerText(mode, running))
	})
}

// skillAt returns the skill id shown on row, or "". UI goroutine only.
func (v *view) skillAt(row int) string {
	if row < 0 || row >= len(v.ids) {
		return ""
	}
	return v.ids[row]
}
