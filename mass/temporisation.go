package mass

// The temporisation strategies stabilise a belief over a continuous flow of mass functions, for
// instance sensor measurements: the stored belief decays with the time elapsed since it was
// acquired and the incoming function is folded in. Both strategies take and return the state to
// carry between calls, the timestamp and the mass function the next call should be applied to.
// They are meant for non-empty mass functions and perform no validation themselves. For details,
// refer to "B. Pietropaoli et al., Belief Inference with Timed Evidence, 2012".

// TemporisationSpecificity temporises by discrimination based on specificity: the stored function
// is discounted by elapsed/maxTime and, when new data arrived, the more specific of the discounted
// and the new function wins. The first call (oldTime of -1) and a stored function older than
// maxTime adopt the new function unconditionally. The gotData flag distinguishes vacuous functions
// inferred from data from vacuous functions caused by data loss; without data the discounted
// function is kept and the stored state does not advance.
func (m *MassFunction) TemporisationSpecificity(oldTime, newTime, maxTime float64, newFunction *MassFunction, gotData bool) (result *MassFunction, storedTime float64, stored *MassFunction) {
	if oldTime == -1 {
		return newFunction.Clone(), newTime, newFunction.Clone()
	}

	elapsed := newTime - oldTime
	if elapsed > maxTime {
		return newFunction.Clone(), newTime, newFunction.Clone()
	}

	discounted := m.discount(elapsed / maxTime)
	switch {
	case !gotData:
		return discounted, oldTime, m.Clone()
	case newFunction.Specificity() >= discounted.Specificity():
		return newFunction.Clone(), newTime, newFunction.Clone()
	default:
		return discounted, oldTime, m.Clone()
	}
}

// TemporisationFusion temporises by fusion: the stored function is discounted by elapsed/maxTime
// (clamped to 1) and combined with the new function using the given rule. A sequence of data
// losses decays the belief linearly while a sequence of vacuous functions obtained from data
// decays it smoothly. The first call (oldTime of -1) adopts the new function as-is; without data
// the discounted function is returned and the stored state does not advance. The error is the one
// of the underlying combination.
func (m *MassFunction) TemporisationFusion(oldTime, newTime, maxTime float64, newFunction *MassFunction, gotData bool, rule CombinationRule) (result *MassFunction, storedTime float64, stored *MassFunction, err error) {
	if oldTime == -1 {
		return newFunction.Clone(), newTime, newFunction.Clone(), nil
	}

	alpha := (newTime - oldTime) / maxTime
	if alpha > 1 {
		alpha = 1
	}

	discounted := m.discount(alpha)
	if !gotData {
		return discounted, oldTime, m.Clone(), nil
	}

	temporised, err := discounted.Combination(rule, newFunction)
	if err != nil {
		return nil, 0, nil, err
	}

	return temporised, newTime, temporised.Clone(), nil
}
