package casebook

import "slices"

// Evidence is a single exhibit shown on an evidence card.
type Evidence struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// VerdictOption is one of the verdict buttons offered for a case.
type VerdictOption struct {
	Type  VerdictType `json:"type"`
	Label string      `json:"label"`
	Emoji string      `json:"emoji"`
}

// PolicyLever is a candidate reform tied to a case.
type PolicyLever struct {
	Text string `json:"text"`
}

// Source is an external reference for a case.
type Source struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Case is a single courtroom scenario the juror judges.
type Case struct {
	ID             int             `json:"id"`
	Title          string          `json:"title"`
	Subtitle       string          `json:"subtitle"`
	Story          string          `json:"story"`
	Evidence       []Evidence      `json:"evidence"`
	VerdictOptions []VerdictOption `json:"verdictOptions"`
	CorrectVerdict VerdictType     `json:"correctVerdict"`
	PolicyLevers   []PolicyLever   `json:"policyLevers"`
	WhatHappened   string          `json:"whatHappened"`
	NegativeImpact []string        `json:"negativeImpact"`
	WhatYouCanDo   string          `json:"whatYouCanDo"`
	Sources        []Source        `json:"sources"`
	IsLocal        bool            `json:"isLocal,omitempty"`
	LocalTag       string          `json:"localTag,omitempty"`
}

// OptionFor returns the verdict option matching v.
func (c Case) OptionFor(v VerdictType) (VerdictOption, bool) {
	for _, o := range c.VerdictOptions {
		if o.Type == v {
			return o, true
		}
	}
	return VerdictOption{}, false
}

// LabelFor returns the case-specific label for v, or the raw verdict
// value when the case has no option for it.
func (c Case) LabelFor(v VerdictType) string {
	if o, ok := c.OptionFor(v); ok {
		return o.Label
	}
	return string(v)
}

// CorrectLabel returns the label of the case's correct verdict.
func (c Case) CorrectLabel() string {
	return c.LabelFor(c.CorrectVerdict)
}

// clone returns a deep copy so callers cannot mutate catalog data.
func (c Case) clone() Case {
	c.Evidence = slices.Clone(c.Evidence)
	c.VerdictOptions = slices.Clone(c.VerdictOptions)
	c.PolicyLevers = slices.Clone(c.PolicyLevers)
	c.NegativeImpact = slices.Clone(c.NegativeImpact)
	c.Sources = slices.Clone(c.Sources)
	return c
}
