package collate

import (
	"context"
	"fmt"
	"sort"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/textfmt"
)

type nameSet map[string]struct{}

func (s nameSet) add(refs []pokeapi.NamedResource) {
	for _, ref := range refs {
		s[textfmt.FormatName(ref.Name)] = struct{}{}
	}
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s nameSet) sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

type relationSets struct {
	doubleFrom, doubleTo nameSet
	halfFrom, halfTo     nameSet
	noFrom, noTo         nameSet
}

func newRelationSets() relationSets {
	return relationSets{
		doubleFrom: nameSet{},
		doubleTo:   nameSet{},
		halfFrom:   nameSet{},
		halfTo:     nameSet{},
		noFrom:     nameSet{},
		noTo:       nameSet{},
	}
}

func (r relationSets) merge(rel *pokeapi.DamageRelations) {
	if rel == nil {
		return
	}
	r.doubleFrom.add(rel.DoubleDamageFrom)
	r.doubleTo.add(rel.DoubleDamageTo)
	r.halfFrom.add(rel.HalfDamageFrom)
	r.halfTo.add(rel.HalfDamageTo)
	r.noFrom.add(rel.NoDamageFrom)
	r.noTo.add(rel.NoDamageTo)
}

// prune applies relation precedence: immunity beats resistance beats
// weakness, and a pokemon's own types never appear as weakness or
// resistance. No-damage sets are left untouched.
func (r relationSets) prune(own nameSet) {
	for name := range r.doubleFrom {
		if r.noFrom.has(name) || r.halfFrom.has(name) || own.has(name) {
			delete(r.doubleFrom, name)
		}
	}
	for name := range r.halfFrom {
		if r.noFrom.has(name) || own.has(name) {
			delete(r.halfFrom, name)
		}
	}
}

func (r relationSets) relations() dex.DamageRelations {
	return dex.DamageRelations{
		DoubleDamageFrom: r.doubleFrom.sorted(),
		DoubleDamageTo:   r.doubleTo.sorted(),
		HalfDamageFrom:   r.halfFrom.sorted(),
		HalfDamageTo:     r.halfTo.sorted(),
		NoDamageFrom:     r.noFrom.sorted(),
		NoDamageTo:       r.noTo.sorted(),
	}
}

// Types loads each of a pokemon's types and combines their damage
// relations. Pruning runs once after every type is merged, so the result
// does not depend on slot order.
func (r *Resolver) Types(ctx context.Context, types []pokeapi.PokemonType) (dex.TypeInfo, error) {
	slots := append([]pokeapi.PokemonType(nil), types...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	own := nameSet{}
	names := make([]string, 0, len(slots))
	sets := newRelationSets()

	for _, slot := range slots {
		t, err := resource.Follow[pokeapi.Type](ctx, r.store, resource.KindType, slot.Type.URL)
		if err != nil {
			return dex.TypeInfo{}, fmt.Errorf("type %s: %w", slot.Type.Name, err)
		}

		name := textfmt.FormatName(t.Name)
		if !own.has(name) {
			own[name] = struct{}{}
			names = append(names, name)
		}
		sets.merge(t.DamageRelations)
	}

	sets.prune(own)
	return dex.TypeInfo{
		Types:           names,
		DamageRelations: sets.relations(),
	}, nil
}
