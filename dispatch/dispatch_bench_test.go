package dispatch

import "testing"

func BenchmarkDispatchSingleLine(b *testing.B) {
	d := New()
	line := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n"
	b.SetBytes(int64(len(line)))
	for i := 0; i < b.N; i++ {
		if _, _, _, ok := d.Dispatch(line); !ok {
			b.Fatal("dropped")
		}
	}
}

func BenchmarkDispatchReassembly(b *testing.B) {
	d := New()
	parts := []string{gsvPart1, gsvPart2, gsvPart3}
	for i := 0; i < b.N; i++ {
		emitted := 0
		for _, p := range parts {
			if _, _, _, ok := d.Dispatch(p); ok {
				emitted++
			}
		}
		if emitted != 1 {
			b.Fatalf("emitted = %d", emitted)
		}
	}
}
