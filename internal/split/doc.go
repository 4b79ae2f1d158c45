// Package split proposes a stratified train/validation split of the train
// records.
//
// Each label of the train split is sampled independently: round(n*ratio) of
// its n items are proposed as validation, with at least one when the label
// has more than one item. Records of any other split keep their split name.
// Given the same records in the same order, the same ratio and the same
// seed, the proposal is identical.
package split
