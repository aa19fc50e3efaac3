package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/bidhub/goapi/base/ctx"
	"github.com/bidhub/goapi/base/metrics"
	"github.com/bidhub/goapi/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	// retTTLNoExpire is the return value of TTL when the key exists but has
	// no associated expire
	retTTLNoExpire = -1
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis pool
func New(name string, metrics metrics.Service, pools *Pools) Service {
	im := &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
	return im
}

func (r *redImpl) getConn(command string) (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}

	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn(commandName)
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// Closing conn explicitly asap improves redigo's performance,
	// bacause longer an connection is hold and not closed, the
	// pool need to handle more connections at the same time and
	// getConn time might burst.
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) (val []byte, err error) {
	tags := []string{
		"func", "get",
		"cluster", r.name,
		"prefix", keys.GetPrefix(key),
	}
	defer r.met.BumpTime("time", tags...).End()

	val, err = redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		context.WithField("err", err).Error("GET redis failed")
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := []string{
		"func", "set",
		"cluster", r.name,
		"prefix", keys.GetPrefix(key),
	}
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
		if _, err := r.connDo(context, "SET", key, val); err != nil {
			context.WithField("err", err).Error("set redis failed")
			return err
		}
		return nil
	}

	r.met.BumpAvg("ttl", expire.Seconds(), tags...)
	if _, err := r.connDo(context, "SET", key, val, "PX", int(expire/time.Millisecond)); err != nil {
		context.WithField("err", err).Error("set redis failed")
		return err
	}
	return nil
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	defer r.met.BumpTime("time", "func", "del", "cluster", r.name).End()

	args := make([]interface{}, 0, len(ks))
	for _, k := range ks {
		args = append(args, k)
	}

	res, err := redis.Int(r.connDo(context, "DEL", args...))
	if err != nil {
		context.WithField("err", err).Error("DEL redis failed")
	}
	return res, err
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", "func", "exists", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	res, err := redis.Bool(r.connDo(context, "EXISTS", key))
	if err != nil {
		context.WithField("err", err).Error("Exists redis failed")
	}
	return res, err
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", "func", "TTL", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	res, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).Error("TTL redis failed")
		return 0, err
	}

	if res == retTTLNoKey {
		return res, ErrNotFound
	} else if res == retTTLNoExpire {
		return res, ErrNoTTL
	}
	return res, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	defer r.met.BumpTime("time", "func", "incrby", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()

	res, err := redis.Int64(r.connDo(context, "INCRBY", key, val))
	if err != nil {
		context.WithField("err", err).Error("INCRBY redis failed")
	}
	return res, err
}
