package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pior/gometa"
	"github.com/pior/gometa/codec"
	"github.com/pior/gometa/meta"
)

func main() {
	addr := "127.0.0.1:11211"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	fmt.Println("gometa CLI")
	fmt.Println("==========")
	fmt.Println("Commands: get <key>, set <key> <value> [ttl_seconds], delete <key>,")
	fmt.Println("          touch <key> <ttl_seconds>, incr <key> <delta>, decr <key> <delta>, quit")
	fmt.Println()

	client, err := memcache.Dial(context.Background(), memcache.Config{Address: addr})
	if err != nil {
		fmt.Printf("failed to connect to %s: %v\n", addr, err)
		os.Exit(1)
	}
	defer client.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		ctx := context.Background()
		switch strings.ToLower(parts[0]) {
		case "get":
			if len(parts) != 2 {
				fmt.Println("usage: get <key>")
				continue
			}
			handleGet(ctx, client, parts[1])

		case "set":
			if len(parts) < 3 || len(parts) > 4 {
				fmt.Println("usage: set <key> <value> [ttl_seconds]")
				continue
			}
			ttl := meta.NoTTL()
			if len(parts) == 4 {
				secs, err := strconv.Atoi(parts[3])
				if err != nil {
					fmt.Printf("invalid ttl: %v\n", err)
					continue
				}
				ttl = meta.ExpiresIn(time.Duration(secs)*time.Second, time.Now)
			}
			handleSet(ctx, client, parts[1], parts[2], ttl)

		case "delete", "del":
			if len(parts) != 2 {
				fmt.Println("usage: delete <key>")
				continue
			}
			handleDelete(ctx, client, parts[1])

		case "touch":
			if len(parts) != 3 {
				fmt.Println("usage: touch <key> <ttl_seconds>")
				continue
			}
			secs, err := strconv.Atoi(parts[2])
			if err != nil {
				fmt.Printf("invalid ttl: %v\n", err)
				continue
			}
			handleTouch(ctx, client, parts[1], meta.ExpiresIn(time.Duration(secs)*time.Second, time.Now))

		case "incr", "decr":
			if len(parts) != 3 {
				fmt.Printf("usage: %s <key> <delta>\n", parts[0])
				continue
			}
			delta, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				fmt.Printf("invalid delta: %v\n", err)
				continue
			}
			handleArithmetic(ctx, client, strings.ToLower(parts[0]), parts[1], delta)

		case "help":
			fmt.Println("get <key> | set <key> <value> [ttl] | delete <key> | touch <key> <ttl> | incr/decr <key> <delta> | quit")

		case "quit", "exit":
			fmt.Println("bye")
			return

		default:
			fmt.Printf("unknown command: %s (try 'help')\n", parts[0])
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf("error reading input: %v\n", err)
	}
}

func handleGet(ctx context.Context, client *memcache.Client, key string) {
	start := time.Now()
	value, err := memcache.Get(ctx, client, key, codec.String{})
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, memcache.ErrMiss):
		fmt.Printf("not found (%v)\n", elapsed)
	case err != nil:
		fmt.Printf("error: %v (%v)\n", err, elapsed)
	default:
		fmt.Printf("%q (%v)\n", value, elapsed)
	}
}

func handleSet(ctx context.Context, client *memcache.Client, key, value string, ttl meta.TTL) {
	start := time.Now()
	err := memcache.Set(ctx, client, key, value, codec.String{}, ttl)
	elapsed := time.Since(start)

	if err != nil {
		fmt.Printf("error: %v (%v)\n", err, elapsed)
		return
	}
	fmt.Printf("stored (%v)\n", elapsed)
}

func handleDelete(ctx context.Context, client *memcache.Client, key string) {
	start := time.Now()
	err := client.Delete(ctx, key)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, memcache.ErrKeyNotFound):
		fmt.Printf("not found (%v)\n", elapsed)
	case err != nil:
		fmt.Printf("error: %v (%v)\n", err, elapsed)
	default:
		fmt.Printf("deleted (%v)\n", elapsed)
	}
}

func handleTouch(ctx context.Context, client *memcache.Client, key string, ttl meta.TTL) {
	start := time.Now()
	err := client.Touch(ctx, key, ttl)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, memcache.ErrKeyNotFound):
		fmt.Printf("not found (%v)\n", elapsed)
	case err != nil:
		fmt.Printf("error: %v (%v)\n", err, elapsed)
	default:
		fmt.Printf("touched (%v)\n", elapsed)
	}
}

func handleArithmetic(ctx context.Context, client *memcache.Client, op, key string, delta uint64) {
	start := time.Now()
	var (
		result uint64
		err    error
	)
	if op == "incr" {
		result, err = client.Increment(ctx, key, delta)
	} else {
		result, err = client.Decrement(ctx, key, delta)
	}
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, memcache.ErrKeyNotFound):
		fmt.Printf("not found (%v)\n", elapsed)
	case err != nil:
		fmt.Printf("error: %v (%v)\n", err, elapsed)
	default:
		fmt.Printf("%d (%v)\n", result, elapsed)
	}
}
