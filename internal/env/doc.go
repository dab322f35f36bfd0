// Package env manages the docker-compose .env file of the DNS stack. The
// file is owned by the stack, not by this operator, so updates rewrite
// known KEY=VALUE lines in place and leave every other line exactly as it
// was.
package env
