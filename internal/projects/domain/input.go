package domain

import "strings"

// Input is the form data a generator was run with. Each kind has its own
// variant; Fields returns the non-blank values keyed by their form name.
type Input interface {
	Kind() Kind
	Fields() map[string]string
	SearchFields() []string
}

type SiteInput struct {
	Description string `json:"description,omitempty"`
	Niche       string `json:"niche,omitempty"`    // legacy
	Audience    string `json:"audience,omitempty"` // legacy
}

func (SiteInput) Kind() Kind { return KindSite }

func (in SiteInput) Fields() map[string]string {
	return compact(map[string]string{
		"description": in.Description,
		"niche":       in.Niche,
		"audience":    in.Audience,
	})
}

func (in SiteInput) SearchFields() []string { return []string{in.Description, in.Niche} }

// Subject is what the user asked for; older records only carry a niche.
func (in SiteInput) Subject() string {
	if strings.TrimSpace(in.Description) != "" {
		return in.Description
	}
	return in.Niche
}

type ContactsInput struct {
	Description string `json:"description,omitempty"`
}

func (ContactsInput) Kind() Kind { return KindContacts }

func (in ContactsInput) Fields() map[string]string {
	return compact(map[string]string{"description": in.Description})
}

func (in ContactsInput) SearchFields() []string { return []string{in.Description} }

type ClientSearchInput struct {
	Niche    string `json:"niche,omitempty"`
	Location string `json:"location,omitempty"`
	Channels string `json:"channels,omitempty"`
	Criteria string `json:"criteria,omitempty"`
}

func (ClientSearchInput) Kind() Kind { return KindClientList }

func (in ClientSearchInput) Fields() map[string]string {
	return compact(map[string]string{
		"niche":    in.Niche,
		"location": in.Location,
		"channels": in.Channels,
		"criteria": in.Criteria,
	})
}

func (in ClientSearchInput) SearchFields() []string { return []string{in.Niche} }

type ContractInput struct {
	ContractType    string `json:"contractType,omitempty"`
	Clauses         string `json:"clauses,omitempty"`
	Terms           string `json:"terms,omitempty"`
	Confidentiality string `json:"confidentiality,omitempty"`
}

func (ContractInput) Kind() Kind { return KindContract }

func (in ContractInput) Fields() map[string]string {
	return compact(map[string]string{
		"contractType":    in.ContractType,
		"clauses":         in.Clauses,
		"terms":           in.Terms,
		"confidentiality": in.Confidentiality,
	})
}

func (in ContractInput) SearchFields() []string { return nil }

type ApproachInput struct {
	Target    string `json:"target,omitempty"`
	Tone      string `json:"tone,omitempty"`
	Objective string `json:"objective,omitempty"`
	Details   string `json:"details,omitempty"`
}

func (ApproachInput) Kind() Kind { return KindApproach }

func (in ApproachInput) Fields() map[string]string {
	return compact(map[string]string{
		"target":    in.Target,
		"tone":      in.Tone,
		"objective": in.Objective,
		"details":   in.Details,
	})
}

func (in ApproachInput) SearchFields() []string { return nil }

// InputFromFields builds the variant for kind from loose form fields.
// Unknown keys are ignored and absent keys stay blank.
func InputFromFields(kind Kind, fields map[string]string) (Input, error) {
	get := func(key string) string { return fields[key] }
	switch kind {
	case KindSite:
		return SiteInput{Description: get("description"), Niche: get("niche"), Audience: get("audience")}, nil
	case KindContacts:
		return ContactsInput{Description: get("description")}, nil
	case KindClientList:
		return ClientSearchInput{Niche: get("niche"), Location: get("location"), Channels: get("channels"), Criteria: get("criteria")}, nil
	case KindContract:
		return ContractInput{ContractType: get("contractType"), Clauses: get("clauses"), Terms: get("terms"), Confidentiality: get("confidentiality")}, nil
	case KindApproach:
		return ApproachInput{Target: get("target"), Tone: get("tone"), Objective: get("objective"), Details: get("details")}, nil
	}
	return nil, ErrInvalidKind
}

// MergeFields overlays patch onto the fields of in and rebuilds the variant.
// Keys mapped to "" clear the field.
func MergeFields(in Input, patch map[string]string) Input {
	fields := in.Fields()
	for k, v := range patch {
		fields[k] = v
	}
	out, err := InputFromFields(in.Kind(), fields)
	if err != nil {
		return in
	}
	return out
}

func compact(m map[string]string) map[string]string {
	for k, v := range m {
		if v == "" {
			delete(m, k)
		}
	}
	return m
}
