// Copyright (c) 2019-2023, Dextroz. All rights reserved.
// This software is licensed under the MIT license. Please consult the LICENSE file
// distributed with the sources of this project regarding your rights to use or distribute this
// software.

// Package httpclient provides the shared HTTP client used to fetch the
// GnuPG installer.
package httpclient

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

var myDialer = &net.Dialer{
	Timeout:   10 * time.Second,
	KeepAlive: 30 * time.Second,
}

var myTransport = &http.Transport{
	Proxy:                 http.ProxyFromEnvironment,
	DialContext:           myDialer.DialContext,
	ForceAttemptHTTP2:     true,
	MaxIdleConns:          10,
	MaxIdleConnsPerHost:   2,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
}

func init() {
	if _, err := http2.ConfigureTransports(myTransport); err != nil {
		panic(err)
	}
}

// Client returns an HTTP client suitable for large downloads. Connection
// setup is bounded by the dialer and TLS handshake timeouts, but there is no
// overall request deadline; installer downloads can legitimately take a long
// time on slow links.
func Client() *http.Client {
	return &http.Client{
		Transport: myTransport,
	}
}
