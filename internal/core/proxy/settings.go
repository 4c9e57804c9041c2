package proxy

import (
	"net"
	"net/http"
	"net/url"
	"strconv"
)

// Settings describes the optional egress proxy backend calls go through.
type Settings struct {
	Enabled  bool   `mapstructure:"BACKEND_PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"BACKEND_PROXY_HOST"`
	Port     int    `mapstructure:"BACKEND_PROXY_PORT"`
	Username string `mapstructure:"BACKEND_PROXY_USERNAME"`
	Password string `mapstructure:"BACKEND_PROXY_PASSWORD"`
}

// HasProxy returns true if proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// URL returns the proxy URL with credentials, or nil when no proxy is configured.
func (p Settings) URL() *url.URL {
	if !p.HasProxy() {
		return nil
	}
	u := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(p.Hostname, strconv.Itoa(p.Port)),
	}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// Redacted returns the proxy URL safe for logs.
func (p Settings) Redacted() string {
	if u := p.URL(); u != nil {
		return u.Redacted()
	}
	return ""
}

// Transport returns a copy of the default transport routed through the proxy,
// or the default transport itself when no proxy is configured.
func (p Settings) Transport() http.RoundTripper {
	u := p.URL()
	if u == nil {
		return http.DefaultTransport
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.Proxy = http.ProxyURL(u)
	return t
}
