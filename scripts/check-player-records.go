// Checks every persisted player record for corruption: undecodable
// JSON, combat state pointing past its monster list, or negative
// attribute pools. Run with -fix to delete the broken records.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
)

func main() {
	fix := flag.Bool("fix", false, "delete records that fail the checks")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	var cursor uint64
	checked, broken := 0, 0
	for {
		keys, next, err := client.Scan(ctx, cursor, "player:*", 100).Result()
		if err != nil {
			log.Fatal("Scan failed:", err)
		}

		for _, key := range keys {
			checked++
			data, err := client.Get(ctx, key).Result()
			if err != nil {
				fmt.Printf("SKIP %s: %v\n", key, err)
				continue
			}

			if reason := diagnose(data); reason != "" {
				broken++
				fmt.Printf("BROKEN %s: %s\n", key, reason)
				if *fix {
					if err := client.Del(ctx, key).Err(); err != nil {
						fmt.Printf("  failed to delete: %v\n", err)
					} else {
						fmt.Println("  deleted")
					}
				}
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	fmt.Printf("\nChecked %d records, %d broken\n", checked, broken)
	if broken > 0 && !*fix {
		fmt.Println("Re-run with -fix to delete them.")
	}
}

func diagnose(data string) string {
	var rec gamebook.PlayerRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return fmt.Sprintf("undecodable: %v", err)
	}
	if rec.PlayerID == "" {
		return "missing player id"
	}
	if rec.Combat != nil {
		if len(rec.Combat.Monsters) == 0 {
			return "combat with no monsters"
		}
		if rec.Combat.CurrentMonsterIndex < 0 || rec.Combat.CurrentMonsterIndex > len(rec.Combat.Monsters) {
			return fmt.Sprintf("combat monster index %d out of range", rec.Combat.CurrentMonsterIndex)
		}
	}
	if rec.Attributes.SkillCurrent < 0 || rec.Attributes.StaminaCurrent < 0 || rec.Attributes.LuckCurrent < 0 {
		return "negative attribute pool"
	}
	if rec.Provisions < 0 || rec.Gold < 0 {
		return "negative provisions or gold"
	}
	return ""
}
