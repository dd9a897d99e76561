// Package revise implements stage D of the pipeline: the context-sensitive
// reviser that collapses short/neargood paragraphs into good/bad by
// inspecting their neighbours, with heading-proximity promotion rules.
package revise

import "github.com/go-justext/justext/internal/model"

// Revise resolves every paragraph's Class to Good or Bad in place, given
// that each paragraph already carries a CFClass from stage C. The four
// passes below run in order and their relative asymmetries (Pass 2 stages
// its decisions, Pass 3 applies in place) are preserved intentionally, not
// accidentally: Pass 3 sees updates from earlier iterations within the same
// pass because NearGood has already been excluded from strict neighbour
// searches by the time Pass 3 runs.
func Revise(paragraphs []model.Paragraph, maxHeadingDistance int) {
	for i := range paragraphs {
		paragraphs[i].Class = paragraphs[i].CFClass
	}

	promoteHeadingsBeforeGood(paragraphs, maxHeadingDistance, model.Short, model.NearGood)
	resolveShort(paragraphs)
	resolveNearGood(paragraphs)
	promoteHeadingsAfterBad(paragraphs, maxHeadingDistance)
}

// promoteHeadingsBeforeGood implements pass 1: for every heading paragraph
// currently in fromClass, scan forward accumulating the scanned paragraphs'
// text length until a Good paragraph is found within maxHeadingDistance (in
// which case the heading is promoted to toClass) or the budget/sequence
// end is exceeded (in which case it is left unchanged).
func promoteHeadingsBeforeGood(paragraphs []model.Paragraph, maxHeadingDistance int, fromClass, toClass model.Class) {
	for i := range paragraphs {
		if !paragraphs[i].Heading || paragraphs[i].Class != fromClass {
			continue
		}
		distance := 0
		for j := i + 1; j < len(paragraphs) && distance <= maxHeadingDistance; j++ {
			if paragraphs[j].Class == model.Good {
				paragraphs[i].Class = toClass
				break
			}
			distance += len(paragraphs[j].Text)
		}
	}
}

// promoteHeadingsAfterBad implements pass 4: same forward scan as pass 1,
// but targets headings the earlier passes left at Bad despite a non-Bad
// cfclass, and promotes straight to Good on a hit.
func promoteHeadingsAfterBad(paragraphs []model.Paragraph, maxHeadingDistance int) {
	for i := range paragraphs {
		if !paragraphs[i].Heading || paragraphs[i].Class != model.Bad || paragraphs[i].CFClass == model.Bad {
			continue
		}
		distance := 0
		for j := i + 1; j < len(paragraphs) && distance <= maxHeadingDistance; j++ {
			if paragraphs[j].Class == model.Good {
				paragraphs[i].Class = model.Good
				break
			}
			distance += len(paragraphs[j].Text)
		}
	}
}

// resolveShort implements pass 2. Decisions are computed against the
// pre-pass state and staged into newClasses, then applied together, so
// that no decision in this pass sees another decision made earlier in the
// same pass.
func resolveShort(paragraphs []model.Paragraph) {
	newClasses := make(map[int]model.Class)

	for i := range paragraphs {
		if paragraphs[i].Class != model.Short {
			continue
		}
		prev := prevNeighbour(paragraphs, i, true)
		next := nextNeighbour(paragraphs, i, true)

		switch {
		case prev == model.Good && next == model.Good:
			newClasses[i] = model.Good
		case prev == model.Bad && next == model.Bad:
			newClasses[i] = model.Bad
		default:
			// exactly one of prev/next is good, the other bad
			lenientPrev := prevNeighbour(paragraphs, i, false)
			lenientNext := nextNeighbour(paragraphs, i, false)
			if (prev == model.Bad && lenientPrev == model.NearGood) ||
				(next == model.Bad && lenientNext == model.NearGood) {
				newClasses[i] = model.Good
			} else {
				newClasses[i] = model.Bad
			}
		}
	}

	for i, c := range newClasses {
		paragraphs[i].Class = c
	}
}

// resolveNearGood implements pass 3. Unlike resolveShort, decisions are
// applied as the scan proceeds, so a paragraph later in the pass can see an
// earlier paragraph's just-applied class. This matches the source
// behaviour and is not a bug: NearGood has already been fully resolved out
// of strict neighbour searches by this point.
func resolveNearGood(paragraphs []model.Paragraph) {
	for i := range paragraphs {
		if paragraphs[i].Class != model.NearGood {
			continue
		}
		prev := prevNeighbour(paragraphs, i, true)
		next := nextNeighbour(paragraphs, i, true)
		if prev == model.Bad && next == model.Bad {
			paragraphs[i].Class = model.Bad
		} else {
			paragraphs[i].Class = model.Good
		}
	}
}

// prevNeighbour and nextNeighbour walk outward from i, skipping Short (and,
// unless ignoreNearGood is false, NearGood) paragraphs, until they find a
// Good or Bad paragraph. Running off the sequence end counts as Bad.
func prevNeighbour(paragraphs []model.Paragraph, i int, ignoreNearGood bool) model.Class {
	return neighbour(paragraphs, i, -1, -1, ignoreNearGood)
}

func nextNeighbour(paragraphs []model.Paragraph, i int, ignoreNearGood bool) model.Class {
	return neighbour(paragraphs, i, 1, len(paragraphs), ignoreNearGood)
}

func neighbour(paragraphs []model.Paragraph, i, inc, boundary int, ignoreNearGood bool) model.Class {
	for i+inc != boundary {
		i += inc
		c := paragraphs[i].Class
		if c == model.Good || c == model.Bad {
			return c
		}
		if c == model.NearGood && !ignoreNearGood {
			return c
		}
	}
	return model.Bad
}
