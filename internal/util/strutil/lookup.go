// Package strutil содержит общие правила сопоставления пользовательского
// текста с именами: нормализацию регистра и нечёткий поиск по словарю.
package strutil

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// MaxFuzzyDistance: расстояние редактирования, начиная с которого
// нечёткое совпадение не принимается
const MaxFuzzyDistance = 2

// Fold приводит строку к регистронезависимой форме.
// cases.Caser хранит состояние, поэтому создаётся на каждый вызов.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Squeeze удаляет пробелы и пунктуацию после Fold
func Squeeze(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			return -1
		}
		return r
	}, Fold(s))
}

// Index: неизменяемый словарь нормализованных ключей
type Index[T any] struct {
	entries map[string]T
	keys    []string
}

// NewIndex строит словарь. Ключи приводятся через Fold; если два ключа
// совпадают после нормализации, какой из них останется, не определено.
func NewIndex[T any](entries map[string]T) *Index[T] {
	ix := &Index[T]{
		entries: make(map[string]T, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	for k, v := range entries {
		key := Fold(k)
		if _, exists := ix.entries[key]; !exists {
			ix.keys = append(ix.keys, key)
		}
		ix.entries[key] = v
	}
	sort.Strings(ix.keys)
	return ix
}

// Len возвращает число ключей
func (ix *Index[T]) Len() int {
	return len(ix.keys)
}

// Keys возвращает отсортированную копию ключей
func (ix *Index[T]) Keys() []string {
	out := make([]string, len(ix.keys))
	copy(out, ix.keys)
	return out
}

// Lookup ищет значение по имени. Точное регистронезависимое совпадение
// всегда имеет приоритет. При fuzzy=true дополнительно игнорируются пробелы
// и пунктуация, а затем принимается ближайший ключ с тем же первым символом
// и расстоянием Левенштейна меньше MaxFuzzyDistance.
func (ix *Index[T]) Lookup(name string, fuzzy bool) (T, bool) {
	var zero T

	key := Fold(name)
	if v, ok := ix.entries[key]; ok {
		return v, true
	}
	if !fuzzy {
		return zero, false
	}

	squeezed := Squeeze(name)
	if squeezed == "" {
		return zero, false
	}
	if v, ok := ix.entries[squeezed]; ok {
		return v, true
	}

	first, _ := utf8.DecodeRuneInString(squeezed)
	best := -1
	var found T
	for _, k := range ix.keys {
		r, _ := utf8.DecodeRuneInString(k)
		if r != first {
			continue
		}
		dist := levenshtein.ComputeDistance(k, squeezed)
		if dist >= MaxFuzzyDistance {
			continue
		}
		// ключи отсортированы, при равном расстоянии остаётся первый
		if best == -1 || dist < best {
			best = dist
			found = ix.entries[k]
		}
	}
	if best == -1 {
		return zero, false
	}
	return found, true
}
