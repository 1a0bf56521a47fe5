package usecase

import (
	"fmt"
	"math"
	"time"

	"pocket_backend/internal/feature/quotes/domain/entity"
)

// maWindows는 차트에 함께 내려주는 이동평균 창 크기입니다.
var maWindows = []int{5, 20, 60, 120}

// defaultDisplayLocation은 표시 시간대가 지정되지 않았을 때 쓰는 기본값입니다.
var defaultDisplayLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// round2는 표시용 값을 소수점 둘째 자리로 반올림합니다.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// barLabel은 기간 코드에 맞는 축 라벨을 만듭니다.
// 분봉(30M)은 "시:분", 나머지는 "월/일" 형식입니다.
func barLabel(ts int64, period string, loc *time.Location) string {
	t := time.Unix(ts, 0).In(loc)
	if period == "30M" {
		return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// movingAverage는 종가 배열의 단순 이동평균을 계산합니다.
// 선행 봉이 창 크기만큼 쌓이기 전의 구간은 nil입니다.
func movingAverage(closes []float64, window int) []*float64 {
	out := make([]*float64, len(closes))
	if window <= 0 || len(closes) < window {
		return out
	}
	var sum float64
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			v := round2(sum / float64(window))
			out[i] = &v
		}
	}
	return out
}

// DeriveChartSeries는 원시 봉을 화면 표시용 봉으로 파생합니다.
// 시가나 종가가 비어 있는 봉은 버리고, 남은 봉을 기준으로
// 라벨과 봉 범위, 이동평균(5/20/60/120)을 계산합니다.
// loc은 라벨 표시 시간대이며 nil이면 Asia/Seoul입니다.
func DeriveChartSeries(raw []entity.RawBar, period string, loc *time.Location) []entity.ChartBar {
	if loc == nil {
		loc = defaultDisplayLocation
	}
	bars := make([]entity.ChartBar, 0, len(raw))
	for _, b := range raw {
		if b.Open == nil || b.Close == nil {
			continue
		}
		open := round2(*b.Open)
		close := round2(*b.Close)

		// 고가/저가가 빠진 봉은 몸통으로 대신합니다.
		high := math.Max(open, close)
		if b.High != nil {
			high = round2(*b.High)
		}
		low := math.Min(open, close)
		if b.Low != nil {
			low = round2(*b.Low)
		}
		var volume int64
		if b.Volume != nil {
			volume = *b.Volume
		}

		bars = append(bars, entity.ChartBar{
			Label:       barLabel(b.Timestamp, period, loc),
			Timestamp:   b.Timestamp,
			Open:        open,
			High:        high,
			Low:         low,
			Close:       close,
			CandleRange: round2(high - low),
			Volume:      volume,
			IsUp:        close >= open,
		})
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	for _, w := range maWindows {
		ma := movingAverage(closes, w)
		for i := range bars {
			switch w {
			case 5:
				bars[i].MA5 = ma[i]
			case 20:
				bars[i].MA20 = ma[i]
			case 60:
				bars[i].MA60 = ma[i]
			case 120:
				bars[i].MA120 = ma[i]
			}
		}
	}
	return bars
}
