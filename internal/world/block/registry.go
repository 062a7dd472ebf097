package block

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/annel0/blockreg/internal/util/strutil"
)

// Ошибки проверки каталога при сборке реестра
var (
	ErrDuplicateID        = errors.New("duplicate block id")
	ErrDuplicateAlias     = errors.New("duplicate block alias")
	ErrEmptyAliases       = errors.New("block has no aliases")
	ErrIDOutOfRange       = errors.New("block id out of range")
	ErrAttachmentConflict = errors.New("block has both data and non-data attachment rules")
)

// Registry: неизменяемый после сборки реестр типов блоков и производных
// таблиц правил. Безопасен для конкурентного чтения.
type Registry struct {
	byID    []*Descriptor
	ordered []Descriptor
	aliases *strutil.Index[BlockID]

	drops  dropTable
	attach attachmentTable
	tiers  map[BlockID]PlacementTier
	random Source
}

// Option настраивает сборку реестра
type Option func(*buildOptions)

type buildOptions struct {
	defs   []definition
	random Source
}

// WithSource задаёт источник случайных чисел для правил выпадения
func WithSource(src Source) Option {
	return func(o *buildOptions) {
		if src != nil {
			o.random = src
		}
	}
}

// withDefinitions подменяет каталог (используется в тестах проверки)
func withDefinitions(defs []definition) Option {
	return func(o *buildOptions) {
		o.defs = defs
	}
}

// New собирает реестр из встроенного каталога и проверяет его инварианты
func New(opts ...Option) (*Registry, error) {
	o := buildOptions{defs: catalogue, random: processSource{}}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{random: o.random}
	if err := r.loadDefinitions(o.defs); err != nil {
		return nil, err
	}

	attach, err := buildAttachmentTable()
	if err != nil {
		return nil, err
	}
	r.attach = attach
	r.drops = buildDropTable()
	r.tiers = buildTiers()

	return r, nil
}

// MustNew: как New, но паникует при ошибке
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("block registry: %v", err))
	}
	return r
}

func (r *Registry) loadDefinitions(defs []definition) error {
	maxID := BlockID(0)
	seen := make(map[BlockID]struct{}, len(defs))
	for _, d := range defs {
		if int(d.id) > MaxBlockID {
			return fmt.Errorf("%w: %d", ErrIDOutOfRange, d.id)
		}
		if _, dup := seen[d.id]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, d.id)
		}
		if len(d.aliases) == 0 {
			return fmt.Errorf("%w: %d (%s)", ErrEmptyAliases, d.id, d.name)
		}
		seen[d.id] = struct{}{}
		if d.id > maxID {
			maxID = d.id
		}
	}

	r.byID = make([]*Descriptor, int(maxID)+1)
	r.ordered = make([]Descriptor, 0, len(defs))
	entries := make(map[string]BlockID)

	for _, d := range defs {
		desc := Descriptor{id: d.id, name: d.name, aliases: make([]string, 0, len(d.aliases))}
		for _, alias := range d.aliases {
			key := strutil.Fold(alias)
			if owner, dup := entries[key]; dup {
				return fmt.Errorf("%w: %q (%d and %d)", ErrDuplicateAlias, alias, owner, d.id)
			}
			entries[key] = d.id
			desc.aliases = append(desc.aliases, key)
		}
		r.ordered = append(r.ordered, desc)
	}

	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].id < r.ordered[j].id })
	for i := range r.ordered {
		r.byID[r.ordered[i].id] = &r.ordered[i]
	}
	r.aliases = strutil.NewIndex(entries)
	return nil
}

// ByID возвращает описание блока по идентификатору. Идентификаторы <= 0 и
// незарегистрированные значения дают (Descriptor{}, false).
func (r *Registry) ByID(id int) (Descriptor, bool) {
	if id <= 0 || id >= len(r.byID) {
		return Descriptor{}, false
	}
	d := r.byID[id]
	if d == nil {
		return Descriptor{}, false
	}
	return *d, true
}

// Catalogued возвращает запись каталога, включая воздух, который ByID
// не выдаёт. Нужен тем, кто хранит id, полученный из Lookup.
func (r *Registry) Catalogued(id BlockID) (Descriptor, bool) {
	if int(id) >= len(r.byID) || r.byID[id] == nil {
		return Descriptor{}, false
	}
	return *r.byID[id], true
}

// Name возвращает отображаемое имя блока или "Unknown"
func (r *Registry) Name(id int) string {
	d, ok := r.ByID(id)
	if !ok {
		return "Unknown"
	}
	return d.name
}

// IsValidBlockID проверяет, зарегистрирован ли идентификатор
func (r *Registry) IsValidBlockID(id int) bool {
	_, ok := r.ByID(id)
	return ok
}

// All возвращает все описания в порядке возрастания идентификатора
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len возвращает число типов в каталоге
func (r *Registry) Len() int {
	return len(r.ordered)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNew()
})

// Default возвращает общий реестр процесса, собранный один раз
func Default() *Registry {
	return defaultRegistry()
}

// Get возвращает описание блока из общего реестра
func Get(id BlockID) (Descriptor, bool) {
	return Default().ByID(int(id))
}

// IsValidBlockID проверяет идентификатор по общему реестру
func IsValidBlockID(id BlockID) bool {
	return Default().IsValidBlockID(int(id))
}

// NameOf возвращает отображаемое имя блока из общего реестра
func NameOf(id int) string {
	return Default().Name(id)
}

// typeDataKey упаковывает идентификатор и 4-битное значение данных
func typeDataKey(id BlockID, data int) uint32 {
	return uint32(id)<<4 | uint32(data&0xf)
}

// knownID переводит произвольное целое в BlockID, если оно укладывается в
// диапазон идентификаторов
func knownID(id int) (BlockID, bool) {
	if id < 0 || id > MaxBlockID {
		return 0, false
	}
	return BlockID(id), true
}
