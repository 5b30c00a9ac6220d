package cdpdriver

import "time"

type captureScreenshotReply struct {
	Data string `json:"data"`
}

// CaptureScreenshot implements spec.md §4.F capture_screenshot: format
// defaults to jpeg, quality defaults to 70 (1-100), or png. An empty image
// fails with a semantic error; the size of the image is not checked or
// limited, and the data is returned whole, however large.
func (d *Driver) CaptureScreenshot(format string, quality int, timeout time.Duration) (CaptureScreenshotResult, error) {
	if err := d.requireSession(); err != nil {
		return CaptureScreenshotResult{}, err
	}

	if format == "" {
		format = "jpeg"
	}
	if format != "jpeg" && format != "png" {
		return CaptureScreenshotResult{}, NewSemanticError("unsupported screenshot format: " + format)
	}
	params := map[string]interface{}{"format": format}
	if format == "jpeg" {
		if quality <= 0 {
			quality = 70
		}
		if quality > 100 {
			quality = 100
		}
		params["quality"] = quality
	}

	_, sessionID := d.state.session()
	t := d.timeout(timeout)
	if t < d.cfg.ScreenshotTimeout() {
		t = d.cfg.ScreenshotTimeout()
	}
	rep, err := d.correlator.sendAndWait("Page.captureScreenshot", params, sessionID, t)
	if err != nil {
		return CaptureScreenshotResult{}, err
	}

	var res captureScreenshotReply
	if err := decodeResult(rep.Result, &res); err != nil {
		return CaptureScreenshotResult{}, err
	}
	if res.Data == "" {
		return CaptureScreenshotResult{Success: false, ErrorDetail: "screenshot capture returned no image data"},
			NewSemanticError("screenshot capture returned no image data")
	}

	mime := "image/jpeg"
	if format == "png" {
		mime = "image/png"
	}
	return CaptureScreenshotResult{Success: true, ImageBase64: res.Data, MimeType: mime}, nil
}
