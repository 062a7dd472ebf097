package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/annel0/blockreg/internal/world/block"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var (
	idColor    = color.New(color.FgCyan).SprintFunc()
	nameColor  = color.New(color.FgGreen, color.Bold).SprintFunc()
	mutedColor = color.New(color.FgHiBlack).SprintFunc()
	errColor   = color.New(color.FgRed).SprintFunc()
)

func disableColor(off bool) {
	if off {
		color.NoColor = true
	}
}

func newCommands(out io.Writer) []subcommands.Command {
	base := cmdBase{out: out, reg: block.Default()}
	return []subcommands.Command{
		&listCmd{cmdBase: base},
		&infoCmd{cmdBase: base},
		&dropCmd{cmdBase: base},
		&attachCmd{cmdBase: base},
		&tierCmd{cmdBase: base},
	}
}

// cmdBase хранит общие для команд вывод и реестр
type cmdBase struct {
	out   io.Writer
	reg   *block.Registry
	fuzzy bool
}

func (c *cmdBase) setResolveFlags(f *flag.FlagSet) {
	f.BoolVar(&c.fuzzy, "fuzzy", false, "разрешать опечатки в имени блока")
}

func (c *cmdBase) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// target: блок, указанный в аргументе команды
type target struct {
	id   int
	name string
}

func (t target) String() string {
	return fmt.Sprintf("%s %s", idColor(fmt.Sprintf("#%d", t.id)), nameColor(t.name))
}

// resolve понимает числовой id (в том числе незарегистрированный) и имена
func (c *cmdBase) resolve(f *flag.FlagSet) (target, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		c.printf("%s ожидается ровно один аргумент: id или имя блока\n", errColor("ошибка:"))
		return target{}, subcommands.ExitUsageError
	}
	arg := f.Arg(0)

	if n, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
		return target{id: n, name: c.reg.Name(n)}, subcommands.ExitSuccess
	}

	d, ok := c.reg.Lookup(arg, c.fuzzy)
	if !ok {
		c.printf("%s блок %q не найден\n", errColor("ошибка:"), arg)
		return target{}, subcommands.ExitFailure
	}
	logrus.Debugf("%q → %d", arg, d.ID())
	return target{id: int(d.ID()), name: d.Name()}, subcommands.ExitSuccess
}

// list

type listCmd struct {
	cmdBase
	tier string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "список всех типов блоков" }
func (c *listCmd) Usage() string {
	return c.Name() + " [-tier normal|place_after_normal|place_last]: " + c.Synopsis() + "\n"
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tier, "tier", "", "показать только блоки этой очереди установки")
}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, d := range c.reg.All() {
		id := int(d.ID())
		if c.tier != "" && c.reg.Tier(id).String() != c.tier {
			continue
		}
		c.printf("%s\t%s\t%s\n", idColor(id), nameColor(d.Name()), mutedColor(strings.Join(d.Aliases(), ", ")))
	}
	return subcommands.ExitSuccess
}

// info

type infoCmd struct {
	cmdBase
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "сведения о блоке" }
func (c *infoCmd) Usage() string {
	return c.Name() + " [-fuzzy] <id|имя>: " + c.Synopsis() + "\n"
}

func (c *infoCmd) SetFlags(f *flag.FlagSet) { c.setResolveFlags(f) }

func (c *infoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, status := c.resolve(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	c.printf("%s\n", t)
	if d, ok := c.reg.ByID(t.id); ok {
		c.printf("  псевдонимы: %s\n", strings.Join(d.Aliases(), ", "))
	} else {
		c.printf("  %s\n", mutedColor("не зарегистрирован"))
	}
	c.printf("  очередь:    %s\n", c.reg.Tier(t.id))
	c.printf("  рельс:      %t\n", c.reg.IsRail(t.id))
	if dir, ok := c.reg.Attachment(t.id, 0); ok {
		c.printf("  опора:      %s\n", dir)
	}
	return subcommands.ExitSuccess
}

// drop

type dropCmd struct {
	cmdBase
	data  int
	draws int
	seed  uint64
}

func (*dropCmd) Name() string     { return "drop" }
func (*dropCmd) Synopsis() string { return "что выпадает при разрушении блока" }
func (c *dropCmd) Usage() string {
	return c.Name() + " [-fuzzy] [-data N] [-n розыгрышей] [-seed S] <id|имя>: " + c.Synopsis() + "\n"
}

func (c *dropCmd) SetFlags(f *flag.FlagSet) {
	c.setResolveFlags(f)
	f.IntVar(&c.data, "data", 0, "значение данных блока")
	f.IntVar(&c.draws, "n", 1, "число розыгрышей для гистограммы")
	f.Uint64Var(&c.seed, "seed", 0, "зерно генератора (0 — случайное)")
}

func (c *dropCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, status := c.resolve(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.draws < 1 {
		c.printf("%s -n должно быть положительным\n", errColor("ошибка:"))
		return subcommands.ExitUsageError
	}

	reg := c.reg
	if c.seed != 0 {
		seeded, err := block.New(block.WithSource(block.NewSeededSource(c.seed)))
		if err != nil {
			c.printf("%s %v\n", errColor("ошибка:"), err)
			return subcommands.ExitFailure
		}
		reg = seeded
	}

	counts := make(map[string]int)
	for i := 0; i < c.draws; i++ {
		counts[describeDrop(reg, reg.Drop(t.id, c.data))]++
	}

	c.printf("%s data=%d\n", t, c.data)
	for _, row := range histogram(counts) {
		if c.draws == 1 {
			c.printf("  %s\n", row.label)
			continue
		}
		c.printf("  %6.2f%%  %s\n", 100*float64(row.count)/float64(c.draws), row.label)
	}
	return subcommands.ExitSuccess
}

func describeDrop(reg *block.Registry, out block.DropOutcome) string {
	if !out.IsItem() {
		return out.Kind.String()
	}
	name := reg.Name(out.Item.ID)
	if name == "Unknown" {
		name = "item"
	}
	return fmt.Sprintf("%d × %s (%d:%d)", out.Item.Amount, name, out.Item.ID, out.Item.Data)
}

type histogramRow struct {
	label string
	count int
}

// histogram сортирует по убыванию частоты, при равенстве по метке
func histogram(counts map[string]int) []histogramRow {
	rows := make([]histogramRow, 0, len(counts))
	for label, count := range counts {
		rows = append(rows, histogramRow{label: label, count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].label < rows[j].label
	})
	return rows
}

// attach

type attachCmd struct {
	cmdBase
	data int
	all  bool
}

func (*attachCmd) Name() string     { return "attach" }
func (*attachCmd) Synopsis() string { return "к какому соседу крепится блок" }
func (c *attachCmd) Usage() string {
	return c.Name() + " [-fuzzy] [-data N | -all] <id|имя>: " + c.Synopsis() + "\n"
}

func (c *attachCmd) SetFlags(f *flag.FlagSet) {
	c.setResolveFlags(f)
	f.IntVar(&c.data, "data", 0, "значение данных блока")
	f.BoolVar(&c.all, "all", false, "показать все значения данных 0..15")
}

func (c *attachCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, status := c.resolve(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	c.printf("%s\n", t)
	values := []int{c.data}
	if c.all {
		values = values[:0]
		for d := 0; d <= 0xf; d++ {
			values = append(values, d)
		}
	}
	for _, data := range values {
		if dir, ok := c.reg.Attachment(t.id, data); ok {
			c.printf("  data=%-2d %s\n", data, dir)
		} else {
			c.printf("  data=%-2d %s\n", data, mutedColor("свободно стоит"))
		}
	}
	return subcommands.ExitSuccess
}

// tier

type tierCmd struct {
	cmdBase
}

func (*tierCmd) Name() string     { return "tier" }
func (*tierCmd) Synopsis() string { return "очередь установки блока" }
func (c *tierCmd) Usage() string {
	return c.Name() + " [-fuzzy] <id|имя>: " + c.Synopsis() + "\n"
}

func (c *tierCmd) SetFlags(f *flag.FlagSet) { c.setResolveFlags(f) }

func (c *tierCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, status := c.resolve(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	c.printf("%s %s\n", t, c.reg.Tier(t.id))
	return subcommands.ExitSuccess
}
