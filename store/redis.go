// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/xAlexMGGx/LinkGames/models"
)

// KeyPrefix namespaces document keys in Redis.
const KeyPrefix = "linkgames:doc:"

// Redis keeps each document as a JSON string under KeyPrefix+name.
type Redis struct {
	client *redis.Client
}

// OpenRedis connects and pings the server.
func OpenRedis(ctx context.Context, addr, password string, dbIndex int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbIndex,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, unavailable("ping", addr, err)
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, name string) (models.Document, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, KeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Document{}, nil
	}
	if err != nil {
		return nil, unavailable("get", name, err)
	}

	return Decode(data)
}

func (r *Redis) Put(ctx context.Context, name string, doc models.Document) error {
	return r.PutMany(ctx, []Named{{Name: name, Document: doc}})
}

// PutMany writes the documents in a MULTI/EXEC block.
func (r *Redis) PutMany(ctx context.Context, docs []Named) error {
	payloads := make([][]byte, len(docs))
	for i, d := range docs {
		if err := checkName(d.Name); err != nil {
			return err
		}
		data, err := Encode(d.Document)
		if err != nil {
			return err
		}
		payloads[i] = data
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, d := range docs {
			pipe.Set(ctx, KeyPrefix+d.Name, payloads[i], 0)
		}
		return nil
	})
	if err != nil {
		return unavailable("put", "batch", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
