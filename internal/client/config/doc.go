// Package config loads runtime configuration for the terminal client.
//
// Sources, lowest precedence first: built-in defaults, an optional JSON file
// named by -c or -config, then command-line flags.
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "online_check_interval": "3s",
//	  "login_timeout": "5s",
//	  "db_path": "client.db",
//	  "export_dir": "exports"
//	}
package config
