package network

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// ProxyProvider supplies the proxy URL for outgoing requests. Empty means direct.
type ProxyProvider interface {
	GetProxyURL(ctx context.Context) string
}

// StaticProxy is a ProxyProvider with a fixed URL.
type StaticProxy string

func (p StaticProxy) GetProxyURL(context.Context) string {
	return string(p)
}

// ClientFactory builds http.Clients for the catalog and translator clients.
type ClientFactory struct {
	proxyProvider  ProxyProvider
	testHTTPClient *http.Client
}

func NewClientFactory(proxyProvider ProxyProvider) *ClientFactory {
	if proxyProvider == nil {
		proxyProvider = StaticProxy("")
	}
	return &ClientFactory{proxyProvider: proxyProvider}
}

// NewClientFactoryForTest always hands out client.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{
		proxyProvider:  StaticProxy(""),
		testHTTPClient: client,
	}
}

// NewHTTPClient returns a client routed through the configured proxy.
// A zero timeout leaves requests bounded only by their context.
func (f *ClientFactory) NewHTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}

	client := &http.Client{Timeout: timeout}
	if proxyURL := f.proxyProvider.GetProxyURL(ctx); proxyURL != "" {
		client.Transport = newTransportWithProxy(proxyURL)
	}
	return client
}

// newTransportWithProxy dials SOCKS proxies through golang.org/x/net/proxy
// and hands HTTP(S) proxies to http.ProxyURL. An unparsable URL yields a
// direct transport.
func newTransportWithProxy(proxyURL string) *http.Transport {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return &http.Transport{}
	}

	if strings.HasPrefix(parsed.Scheme, "socks") {
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{User: parsed.User.Username()}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return &http.Transport{}
		}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			return &http.Transport{DialContext: cd.DialContext}
		}
		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}
	}

	return &http.Transport{Proxy: http.ProxyURL(parsed)}
}
