package models

import "sort"

// ReferencesModel carries the reference records a response payload mentions,
// so clients can hydrate IDs without extra requests. The only reference type
// in this API is the taxi zone.
type ReferencesModel struct {
	Zones []ZoneReference `json:"zones"`
}

// ZoneReference is the reference form of a taxi zone.
type ZoneReference struct {
	Borough string `json:"borough"`
	ID      int    `json:"id"`
	Name    string `json:"name"`
}

// NewZoneReference creates a ZoneReference with the provided values
func NewZoneReference(id int, name, borough string) ZoneReference {
	return ZoneReference{
		Borough: borough,
		ID:      id,
		Name:    name,
	}
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Zones: []ZoneReference{},
	}
}

// NewZoneReferences creates a ReferencesModel holding the given zones sorted
// by ID.
func NewZoneReferences(zones []Zone) ReferencesModel {
	refs := NewEmptyReferences()
	for _, z := range zones {
		refs.Zones = append(refs.Zones, NewZoneReference(z.ID, z.Name, z.Borough))
	}
	sort.Slice(refs.Zones, func(i, j int) bool { return refs.Zones[i].ID < refs.Zones[j].ID })
	return refs
}
