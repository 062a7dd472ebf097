package block

import (
	"errors"
	"strconv"
	"strings"
)

// Lookup находит блок по тексту пользователя. Если текст является целым числом,
// используется ByID независимо от fuzzy; иначе ищется псевдоним без учёта
// регистра, а при fuzzy=true допускается нечёткое совпадение.
func (r *Registry) Lookup(text string, fuzzy bool) (Descriptor, bool) {
	trimmed := strings.TrimSpace(text)
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err == nil {
		if n > MaxBlockID || n < 0 {
			return Descriptor{}, false
		}
		return r.ByID(int(n))
	}
	if errors.Is(err, strconv.ErrRange) {
		// число, но вне диапазона int64
		return Descriptor{}, false
	}

	id, ok := r.aliases.Lookup(trimmed, fuzzy)
	if !ok {
		return Descriptor{}, false
	}
	return r.Catalogued(id)
}

// Lookup ищет блок через общий реестр
func Lookup(text string, fuzzy bool) (Descriptor, bool) {
	return Default().Lookup(text, fuzzy)
}
