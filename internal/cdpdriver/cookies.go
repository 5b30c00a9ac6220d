package cdpdriver

import "time"

type networkCookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
}

type getCookiesReply struct {
	Cookies []networkCookie `json:"cookies"`
}

// GetCookies implements SPEC_FULL.md §12 get_cookies. Network.getCookies is
// browser-scoped and does not need a page session, but we still require one
// to keep the operation bound to the tab the caller expects.
func (d *Driver) GetCookies(timeout time.Duration) (CookieResult, error) {
	if err := d.requireSession(); err != nil {
		return CookieResult{}, err
	}
	r, err := d.correlator.sendAndWait("Network.getCookies", nil, "", d.timeout(timeout))
	if err != nil {
		return CookieResult{}, err
	}
	var reply getCookiesReply
	if err := decodeResult(r.Result, &reply); err != nil {
		return CookieResult{}, err
	}
	for i := range reply.Cookies {
		reply.Cookies[i].Name = sanitizeUTF8(reply.Cookies[i].Name)
		reply.Cookies[i].Value = sanitizeUTF8(reply.Cookies[i].Value)
		reply.Cookies[i].Domain = sanitizeUTF8(reply.Cookies[i].Domain)
		reply.Cookies[i].Path = sanitizeUTF8(reply.Cookies[i].Path)
	}
	raw, err := jsonMarshalCompact(reply.Cookies)
	if err != nil {
		return CookieResult{}, NewProtocolError(0, "", "failed to encode cookies")
	}
	return CookieResult{Success: true, CookiesJSON: string(raw)}, nil
}

// SetCookie implements SPEC_FULL.md §12 set_cookie via Network.setCookie.
func (d *Driver) SetCookie(name, value, domain, path, sameSite string, httpOnly, secure bool, expires float64, timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	params := map[string]interface{}{
		"name":     name,
		"value":    value,
		"domain":   domain,
		"path":     path,
		"httpOnly": httpOnly,
		"secure":   secure,
	}
	if sameSite != "" {
		params["sameSite"] = sameSite
	}
	if expires > 0 {
		params["expires"] = expires
	}
	r, err := d.correlator.sendAndWait("Network.setCookie", params, "", d.timeout(timeout))
	if err != nil {
		return DriverResult{}, err
	}
	var reply struct {
		Success bool `json:"success"`
	}
	if err := decodeResult(r.Result, &reply); err == nil && !reply.Success {
		return DriverResult{}, NewSemanticError("set_cookie rejected by browser")
	}
	return DriverResult{Success: true, Message: "cookie set"}, nil
}

// ClearCookies implements SPEC_FULL.md §12 clear_cookies via
// Network.clearBrowserCookies.
func (d *Driver) ClearCookies(timeout time.Duration) (DriverResult, error) {
	if err := d.requireSession(); err != nil {
		return DriverResult{}, err
	}
	if _, err := d.correlator.sendAndWait("Network.clearBrowserCookies", nil, "", d.timeout(timeout)); err != nil {
		return DriverResult{}, err
	}
	return DriverResult{Success: true, Message: "cookies cleared"}, nil
}
