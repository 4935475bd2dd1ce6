package normalization

// linkWindow максимальное расстояние в токенах между идентификатором
// и записью, к которой он привязывается
const linkWindow = 6

// Linker привязывает идентификаторы и даты рождения к ближайшим
// записям персон и организаций
type Linker struct{}

// NewLinker создает компоновщик сигналов
func NewLinker() *Linker {
	return &Linker{}
}

// Link распределяет идентификаторы и даты по записям. Персоны имеют
// приоритет над организациями; при равном расстоянии выигрывает более
// ранняя запись. Непривязанные идентификаторы возвращаются отдельно.
func (l *Linker) Link(cls classification, persons []PersonRecord, orgs []OrganizationRecord) []LinkedID {
	var unlinked []LinkedID

	for _, ent := range cls.identifiers {
		id := LinkedID{
			Type:       ent.IDType,
			Value:      ent.Value,
			Confidence: ent.Confidence,
			Source:     ent.Source,
		}

		if pi, ok := nearestRecord(ent.TokenIndex, personRanges(persons)); ok {
			persons[pi].IDs = append(persons[pi].IDs, id)
			continue
		}
		if oi, ok := nearestRecord(ent.TokenIndex, orgRanges(orgs)); ok {
			orgs[oi].IDs = append(orgs[oi].IDs, id)
			continue
		}
		unlinked = append(unlinked, id)
	}

	for _, date := range cls.dates {
		if !date.Birth {
			continue
		}
		anchor := date.TokenIndexes[0]
		if pi, ok := nearestRecord(anchor, personRanges(persons)); ok && persons[pi].DOB == nil {
			iso := date.ISO
			persons[pi].DOB = &iso
		}
	}

	return unlinked
}

// tokenRange диапазон индексов токенов одной записи
type tokenRange struct {
	first, last int
}

func personRanges(persons []PersonRecord) []tokenRange {
	ranges := make([]tokenRange, len(persons))
	for i, p := range persons {
		ranges[i] = tokenRange{p.TokenIndexes[0], p.TokenIndexes[len(p.TokenIndexes)-1]}
	}
	return ranges
}

func orgRanges(orgs []OrganizationRecord) []tokenRange {
	ranges := make([]tokenRange, len(orgs))
	for i, o := range orgs {
		ranges[i] = tokenRange{o.TokenIndexes[0], o.TokenIndexes[len(o.TokenIndexes)-1]}
	}
	return ranges
}

// nearestRecord находит запись в пределах окна привязки с наименьшим
// расстоянием до якорного токена
func nearestRecord(anchor int, ranges []tokenRange) (int, bool) {
	best, bestDist := -1, linkWindow+1
	for i, r := range ranges {
		dist := rangeDistance(anchor, r)
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 || bestDist > linkWindow {
		return 0, false
	}
	return best, true
}

func rangeDistance(anchor int, r tokenRange) int {
	switch {
	case anchor < r.first:
		return r.first - anchor
	case anchor > r.last:
		return anchor - r.last
	default:
		return 0
	}
}
