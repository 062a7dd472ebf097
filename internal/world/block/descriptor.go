package block

// Descriptor описывает тип блока: идентификатор, отображаемое имя и набор
// псевдонимов, по которым его можно найти. Значение неизменяемо.
type Descriptor struct {
	id      BlockID
	name    string
	aliases []string
}

// ID возвращает идентификатор блока
func (d Descriptor) ID() BlockID {
	return d.id
}

// Name возвращает отображаемое имя блока
func (d Descriptor) Name() string {
	return d.name
}

// Aliases возвращает копию списка псевдонимов в порядке объявления
func (d Descriptor) Aliases() []string {
	out := make([]string, len(d.aliases))
	copy(out, d.aliases)
	return out
}

// String возвращает имя блока
func (d Descriptor) String() string {
	return d.name
}

// definition: строка каталога, из которой собирается Descriptor
type definition struct {
	id      BlockID
	name    string
	aliases []string
}

func def(id BlockID, name string, aliases ...string) definition {
	return definition{id: id, name: name, aliases: aliases}
}
