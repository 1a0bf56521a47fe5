package yahoo

import "os"

const defaultBaseURL = "https://query1.finance.yahoo.com"

// browserUserAgent는 일반 브라우저의 UA 문자열입니다.
// 기본 Go UA는 시세 API가 거부하는 경우가 있습니다.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config는 Yahoo Finance 어댑터 설정입니다.
type Config struct {
	BaseURL string
}

// LoadConfig는 환경 변수에서 설정을 읽어옵니다.
// YAHOO_BASE_URL이 비어 있으면 공개 엔드포인트를 사용합니다.
// 프록시를 거치는 배포에서는 프록시 주소를 지정합니다.
func LoadConfig() Config {
	base := os.Getenv("YAHOO_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{BaseURL: base}
}
