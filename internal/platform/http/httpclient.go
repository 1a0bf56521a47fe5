package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient는 외부 API 호출용으로 설정된 HTTP 클라이언트를 생성합니다.
//
// http.DefaultClient에는 타임아웃이 없으므로 외부 호출에는 반드시
// 이 클라이언트를 사용합니다. Transport는 연결 안정성과 리소스 관리를
// 위해 명시적으로 설정합니다.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
