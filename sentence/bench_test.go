package sentence

import (
	"testing"

	"github.com/coregx/nmea/strparse"
)

func BenchmarkValidate(b *testing.B) {
	s := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"
	b.SetBytes(int64(len(s)))
	for i := 0; i < b.N; i++ {
		if err := Validate.Apply(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewGGA(b *testing.B) {
	s := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"
	ctx := strparse.NewContext()
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewGGA(ctx.Init(s), TalkerGP); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewRMC(b *testing.B) {
	s := "$GPRMC,110125,A,5505.337580,N,03858.653666,E,148.8,84.6,310317,8.9,E,D*2E"
	ctx := strparse.NewContext()
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewRMC(ctx.Init(s), TalkerGP); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewGSVThreeLines(b *testing.B) {
	s := "$GPGSV,3,1,10,25,68,053,47,21,59,306,49,29,56,161,49,31,36,265,49*79\r\n" +
		"$GPGSV,3,2,10,12,29,048,49,05,22,123,49,18,13,000,49,01,00,000,49*72\r\n" +
		"$GPGSV,3,3,10,14,00,000,03,16,00,000,27*7C"
	ctx := strparse.NewContext()
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewGSV(ctx.Init(s), TalkerGP); err != nil {
			b.Fatal(err)
		}
	}
}
