// Package jitter размывает интервалы фоновых задач, чтобы периодическая работа
// не выполнялась строго синхронно с другими таймерами процесса.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultFactor — доля интервала, на которую он может быть увеличен.
const DefaultFactor = 0.1

// Duration возвращает d, увеличенную на случайную величину из [0, d*factor).
// При factor <= 0 или d <= 0 возвращается d без изменений.
func Duration(d time.Duration, factor float64) time.Duration {
	return durationFrom(d, factor, rand.Float64)
}

func durationFrom(d time.Duration, factor float64, rnd func() float64) time.Duration {
	if factor <= 0 || d <= 0 {
		return d
	}

	return d + time.Duration(rnd()*factor*float64(d))
}
