package element

// Walk visits e and every element reachable from it depth-first, in order:
// content first, then default, samples and enumerations.
// Returning false from fn stops descent into the current element.
func Walk(e *Element, fn func(*Element) bool) {
	if e == nil || !fn(e) {
		return
	}

	switch content := e.Content.(type) {
	case Items:
		for _, item := range content {
			Walk(item, fn)
		}
	case *Member:
		Walk(content.Key, fn)
		Walk(content.Value, fn)
	case *Element:
		Walk(content, fn)
	}

	Walk(e.Default, fn)
	for _, s := range e.Samples {
		Walk(s, fn)
	}
	for _, en := range e.Enumerations {
		Walk(en, fn)
	}
}

// StripSourceMaps removes source locations from e and its descendants.
func StripSourceMaps(e *Element) {
	Walk(e, func(el *Element) bool {
		el.SourceMap = nil
		return true
	})
}

// FindByClass returns every element under e tagged with class, in walk order.
func FindByClass(e *Element, class string) []*Element {
	var found []*Element
	Walk(e, func(el *Element) bool {
		if el.HasClass(class) {
			found = append(found, el)
		}
		return true
	})
	return found
}

// FindByKind returns every element under e of kind k, in walk order.
func FindByKind(e *Element, k Kind) []*Element {
	var found []*Element
	Walk(e, func(el *Element) bool {
		if el.Kind == k {
			found = append(found, el)
		}
		return true
	})
	return found
}
