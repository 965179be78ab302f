package apidoc

// Merge combines two partial descriptions of the same entity.
//
// Identity fields come from existing; unset options fall back to incoming.
// Every list is existing's entries followed by incoming's. Members are not
// de-duplicated: each page contributes a disjoint slice. Neither input is
// modified.
func Merge(existing, incoming Entity) Entity {
	merged := Entity{
		Name:          existing.Name,
		Kind:          existing.Kind,
		Description:   concat(existing.Description, incoming.Description),
		Examples:      concat(existing.Examples, incoming.Examples),
		Fields:        concat(existing.Fields, incoming.Fields),
		Methods:       concatMethods(existing.Methods, incoming.Methods),
		EnumConstants: concat(existing.EnumConstants, incoming.EnumConstants),
		Supertypes:    concat(existing.Supertypes, incoming.Supertypes),
		PackagePath:   existing.PackagePath.Or(incoming.PackagePath),
		Anchor:        existing.Anchor.Or(incoming.Anchor),
	}
	if merged.Name == "" {
		merged.Name = incoming.Name
	}
	if merged.Kind == "" {
		merged.Kind = incoming.Kind
	}
	return merged
}

func concat[T any](a, b []T) []T {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func concatMethods(a, b []Method) []Method {
	all := concat(a, b)
	for i := range all {
		all[i].Description = cloneSlice(all[i].Description)
		all[i].Args = cloneSlice(all[i].Args)
		all[i].Examples = cloneSlice(all[i].Examples)
	}
	return all
}
