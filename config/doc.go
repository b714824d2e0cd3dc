// Package config loads topolab settings from an optional YAML file and
// TOPOLAB_* environment variables, validates them, and builds the process
// logger.
//
// Example topolab.yaml:
//
//	log_level: info
//	log_format: text
//	output_dir: output
//	seed: 0            # 0 = time-seeded partial meshes
//	default_size: medium
//	branching_factor: 2
//	links_file: configs/links.txt
//	inventory_file: configs/inventory.yaml
//	metrics_file: ""   # Prometheus textfile dump, disabled when empty
//	size_profiles:
//	  lab: {node_count: 5, spine_count: 2, leaf_count: 2}
package config
