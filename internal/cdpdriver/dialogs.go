package cdpdriver

import "time"

// GetDialogMessage implements SPEC_FULL.md §12 get_dialog_message: reads the
// pending-dialog slot populated by Page.javascriptDialogOpening (spec.md
// §4.D), failing with a semantic error if no dialog is open.
func (d *Driver) GetDialogMessage() (GetDialogMessageResult, error) {
	dialog, ok := d.state.getDialog()
	if !ok {
		return GetDialogMessageResult{}, NewSemanticError("no dialog is currently open")
	}
	return GetDialogMessageResult{Success: true, Present: true, Type: dialog.Type, Message: sanitizeUTF8(dialog.Message)}, nil
}

func (d *Driver) handleDialog(accept bool, promptText string, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if _, ok := d.state.getDialog(); !ok {
		return DriverResult{}, NewSemanticError("no dialog is currently open")
	}
	_, sessionID := d.state.session()
	params := map[string]interface{}{"accept": accept}
	if promptText != "" {
		params["promptText"] = promptText
	}
	if _, err := d.correlator.sendAndWait("Page.handleJavaScriptDialog", params, sessionID, d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	d.state.clearDialog()
	return DriverResult{Success: true, Message: "dialog handled"}, nil
}

// AcceptDialog implements SPEC_FULL.md §12 accept_dialog.
func (d *Driver) AcceptDialog(timeout time.Duration) (DriverResult, error) {
	return d.handleDialog(true, "", timeout)
}

// DismissDialog implements SPEC_FULL.md §12 dismiss_dialog.
func (d *Driver) DismissDialog(timeout time.Duration) (DriverResult, error) {
	return d.handleDialog(false, "", timeout)
}

// SendPromptValue implements SPEC_FULL.md §12 send_prompt_value(text): accepts
// a prompt() dialog with the given input text.
func (d *Driver) SendPromptValue(text string, timeout time.Duration) (DriverResult, error) {
	return d.handleDialog(true, text, timeout)
}
