// Package resample provides sample-rate conversion of finite recordings by
// linear interpolation.
//
// Unlike band-limited polyphase conversion, linear resampling is exact at the
// original sample instants and preserves the positions of direction changes,
// which is what scan-based driving metrics need. The output covers the same
// total duration (len-1)/rate as the input; converting to an equal rate
// returns the input unchanged.
package resample
