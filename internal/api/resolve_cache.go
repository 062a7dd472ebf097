package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/annel0/blockreg/internal/cache"
	"github.com/annel0/blockreg/internal/util/strutil"
	"github.com/annel0/blockreg/internal/world/block"
)

// notFoundMarker кеширует отрицательный результат поиска
const notFoundMarker = "-"

func resolveKey(q string, fuzzy bool) string {
	return fmt.Sprintf("resolve:%t:%s", fuzzy, strutil.Fold(q))
}

// resolve ищет блок по тексту, используя кеш, если он настроен.
// Ошибки кеша не мешают ответу: поиск выполняется по реестру.
func (rs *RestServer) resolve(ctx context.Context, q string, fuzzy bool) (block.Descriptor, bool) {
	if rs.cache == nil {
		return rs.registry.Lookup(q, fuzzy)
	}

	key := resolveKey(q, fuzzy)
	raw, err := rs.cache.Get(ctx, key)
	switch {
	case err == nil:
		if d, ok := rs.fromCached(string(raw)); ok || string(raw) == notFoundMarker {
			return d, ok
		}
		rs.log.Warn("Повреждённая запись кеша %s: %q", key, raw)
	case !cache.IsCacheMiss(err):
		rs.log.Warn("Кеш недоступен: %v", err)
	}

	d, found := rs.registry.Lookup(q, fuzzy)
	value := notFoundMarker
	if found {
		value = strconv.Itoa(int(d.ID()))
	}
	if err := rs.cache.Set(ctx, key, []byte(value), 0); err != nil {
		rs.log.Debug("Не удалось сохранить %s в кеш: %v", key, err)
	}
	return d, found
}

func (rs *RestServer) fromCached(raw string) (block.Descriptor, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 || id > block.MaxBlockID {
		return block.Descriptor{}, false
	}
	return rs.registry.Catalogued(block.BlockID(id))
}
