// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Settings are resolved in order, first non-empty wins:

 1. CLI flags
 2. Environment variables (a .env file is loaded by main)
 3. The YAML file named by -config / LISTS_CONFIG
 4. Defaults

# CLI Flags and Environment Variables

	-token                 DISCORD_TOKEN            bot token (required)
	-owner                 OWNER_ID                 owner user ID (required, digits)
	-prefix                COMMAND_PREFIX           default "!"
	-data-dir              DATA_DIR                 default /app/data
	-store                 STORE_BACKEND            file, sqlite, postgres, redis
	-d                     DATABASE_URL             sqlite/postgres URL
	-redis-url             REDIS_URL                redis backend URL
	-seed                  SEED_LISTS               "true" seeds empty stores
	-poll-duration         POLL_DURATION            default 10m
	-http-addr             HTTP_ADDR                default :3318
	-log-level             LOG_LEVEL                default info
	-log-format            LOG_FORMAT               text or json
	-config                LISTS_CONFIG             YAML file
	-kick-whitelist-users  KICK_WHITELIST_USER_IDS  comma separated
	-kick-whitelist-roles  KICK_WHITELIST_ROLE_IDS  comma separated

# YAML File

	owner_id: "250856281722716161"
	lists:
	  - name: banned
	    emoji: "🚫"
	  - name: limited
	    emoji: "1️⃣"
	kick_whitelist:
	  users: ["250856281722716161"]
	  roles: []

The list enumeration is fixed for the life of the process. Names are
lower-cased and trimmed; duplicates are rejected.

# Validation

ParseFlags returns an error if:

  - DISCORD_TOKEN is missing
  - OWNER_ID is missing or not numeric
  - POLL_DURATION does not parse or is not positive
  - the store backend is unknown, or postgres/redis lack a URL
*/
package cliparse
