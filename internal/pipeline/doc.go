// Package pipeline orchestrates scanning, counting, the train/val proposal
// and writing of the three manifest files.
//
// Types:
//   - RunStats (Images, Skipped, Unreadable, Suspect, Train, Val, Written;
//     ValShare method)
//
// Functions:
//   - Run(ctx, cfg, src, dst, log) -> (RunStats, error)
//     scan train and test -> count matrix -> seeded proposal ->
//     write dataset_index.csv, class_counts.csv,
//     proposed_train_val_split.csv (unless dry run) -> summary.
package pipeline
