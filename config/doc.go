// Package config loads logger settings from a file and the environment
// and turns them into a Logger.
//
// Files may be YAML, TOML or JSON; the format follows the extension.
// Every key can be overridden by an SVCLOG_ environment variable:
//
//	service: billing
//	level: warn
//	caller_offset: 2
//	stringify: true
//	output: [stdout, /var/log/billing/app.log]
//	format: json
//
//	SVCLOG_LEVEL=debug ./billing
package config
