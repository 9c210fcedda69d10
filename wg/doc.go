// Package wg is the stochastic daily weather generation engine. It produces
// synthetic daily precipitation and Tmax/Tmin series for a watershed that
// reproduce the statistical structure of an observed record: wet/dry spell
// persistence (monthly negative binomial spells), bounded wet-day depths
// (monthly generalized gamma), seasonal temperature climatology driven by a
// lag-1 multivariate residual process, and an independent extreme-event
// overlay per return-period class.
//
// One Realization is one independently seeded pass over the full study
// horizon. Realizations share nothing mutable; the Coordinator runs
// thousands of them across a worker pool, and determinism rests entirely on
// seed derivation (base seed + realization index per sampler family).
package wg
