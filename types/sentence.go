package types

// Sentence is an ordered sequence of elements (Word, Multiword, EmptyNode)
// together with the header comments preceding its first element. A Sentence
// owns its elements and comments exclusively.
type Sentence struct {
	Comments []string
	Elements []Element
}

// IsValid checks the cross-element invariants of a well-formed sentence, in
// the order described by spec §4.3:
//
//  1. the element list is non-empty;
//  2. the sentence contains at least one Word;
//  3. every element's own IsValid holds;
//  4. the first element's index anchors at 1 (Word/Multiword) or 0 (EmptyNode);
//  5. Word indices, in order, form 1..n with no gaps or repeats;
//  6. each Multiword sits immediately before the Word it starts at, within bounds,
//     and no two Multiwords overlap;
//  7. EmptyNodes attached to word k (or to the top, k=0) are contiguous and
//     their sub-indices form 1..m with no gaps;
//  8. every Word's head, when present, is within [0, n].
//
// IsValid never panics and never returns an error: it is a pure predicate.
func (s Sentence) IsValid() bool {
	if len(s.Elements) == 0 {
		return false
	}

	hasWord := false
	wordCount := 0
	for _, e := range s.Elements {
		if !e.IsValid() {
			return false
		}
		if _, ok := e.(Word); ok {
			hasWord = true
			wordCount++
		}
	}
	if !hasWord {
		return false
	}

	switch first := s.Elements[0].(type) {
	case Word:
		if first.Index != 1 {
			return false
		}
	case Multiword:
		if first.FirstIndex != 1 {
			return false
		}
	case EmptyNode:
		if first.MainIndex != 0 {
			return false
		}
	}

	n := wordCount
	expectedWordIndex := 1
	lastMultiwordEnd := 0
	lastWordIndex := 0
	emptyNodeAttach := -1
	expectedSubIndex := 1

	for i, e := range s.Elements {
		switch v := e.(type) {
		case Word:
			if v.Index != expectedWordIndex {
				return false
			}
			expectedWordIndex++
			lastWordIndex = v.Index
			emptyNodeAttach = -1
			expectedSubIndex = 1

			if v.Head != nil {
				h := *v.Head
				if h < 0 || h > n {
					return false
				}
			}

		case Multiword:
			if v.LastIndex > n {
				return false
			}
			if v.FirstIndex <= lastMultiwordEnd {
				return false
			}
			if i+1 >= len(s.Elements) {
				return false
			}
			next, ok := s.Elements[i+1].(Word)
			if !ok || next.Index != v.FirstIndex {
				return false
			}
			lastMultiwordEnd = v.LastIndex

		case EmptyNode:
			if v.MainIndex != lastWordIndex {
				return false
			}
			if emptyNodeAttach != v.MainIndex {
				emptyNodeAttach = v.MainIndex
				expectedSubIndex = 1
			}
			if v.SubIndex != expectedSubIndex {
				return false
			}
			expectedSubIndex++
		}
	}

	return expectedWordIndex-1 == n
}
