package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/vcrini/lazynechronica/internal/diag"
)

// statusSink forwards diagnostics and keeps the latest one for the status
// line.
type statusSink struct {
	next diag.Sink
	ui   *tviewUI
}

func (s *statusSink) Infof(format string, args ...any) {
	s.next.Infof(format, args...)
	s.ui.message = fmt.Sprintf(format, args...)
}

func (s *statusSink) Warnf(format string, args ...any) {
	s.next.Warnf(format, args...)
	s.ui.message = "warning: " + fmt.Sprintf(format, args...)
}

func (s *statusSink) Errorf(err error, format string, args ...any) {
	s.next.Errorf(err, format, args...)
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg += ": " + err.Error()
	}
	s.ui.message = "error: " + msg
}

func (ui *tviewUI) breadcrumb() string {
	return strings.Join(ui.ctrl.State().Visible(), " › ")
}

func (ui *tviewUI) refreshStatus() {
	ui.status.SetText(fmt.Sprintf(" view:[black:gold] %s [-:-] |%s| [black:gold]msg[-:-] %s", ui.breadcrumb(), helpText, tview.Escape(ui.message)))
}
