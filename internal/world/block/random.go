package block

import (
	"math/rand/v2"
	"sync"
)

// Source: источник псевдослучайных чисел для правил выпадения.
// Реализация должна быть безопасна для конкурентного использования,
// если реестр разделяется между горутинами.
type Source interface {
	// IntN возвращает число в диапазоне [0, n)
	IntN(n int) int
}

// processSource использует общий генератор процесса из math/rand/v2
type processSource struct{}

func (processSource) IntN(n int) int {
	return rand.IntN(n)
}

// lockedSource: детерминированный генератор под мьютексом
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource создаёт детерминированный потокобезопасный источник.
// Нужен для тестов и воспроизводимых выборок в инструментах.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
