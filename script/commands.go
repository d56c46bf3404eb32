package script

import (
	"github.com/hneemann/dslib/chain"
	"github.com/hneemann/dslib/hashMap"
	"sort"
	"strconv"
	"strings"
)

func commandTable() *hashMap.Map[command] {
	m := hashMap.New[command]()
	m.Put("echo", command{0, -1, func(in *Interpreter, st Statement) error {
		return in.println(strings.Join(values(st.Args), " "))
	}})
	m.Put("hash", command{1, 1, func(in *Interpreter, st Statement) error {
		k := st.Args[0].image
		h := hashMap.Hash(k)
		return in.println(h, "bucket", hashMap.BucketIndex(h))
	}})

	m.Put("queue", command{1, -1, func(in *Interpreter, st Statement) error {
		n, err := name(st.Args[0])
		if err != nil {
			return err
		}
		in.vars.Put(n, chain.QueueOf(values(st.Args[1:])...))
		return nil
	}})
	m.Put("enqueue", command{2, -1, func(in *Interpreter, st Statement) error {
		q, err := in.queueVar(st.Args[0])
		if err != nil {
			return err
		}
		for _, v := range values(st.Args[1:]) {
			q.Enqueue(v)
		}
		return nil
	}})
	m.Put("dequeue", command{1, 1, func(in *Interpreter, st Statement) error {
		q, err := in.queueVar(st.Args[0])
		if err != nil {
			return err
		}
		return in.printOpt(q.Dequeue())
	}})
	m.Put("at", command{2, 2, func(in *Interpreter, st Statement) error {
		q, err := in.queueVar(st.Args[0])
		if err != nil {
			return err
		}
		i, err := index(st.Args[1])
		if err != nil {
			return err
		}
		return in.printOpt(q.Get(i))
	}})
	m.Put("set", command{3, 3, func(in *Interpreter, st Statement) error {
		q, err := in.queueVar(st.Args[0])
		if err != nil {
			return err
		}
		i, err := index(st.Args[1])
		if err != nil {
			return err
		}
		return in.printOpt(q.Set(i, st.Args[2].image))
	}})
	m.Put("len", command{1, 1, func(in *Interpreter, st Statement) error {
		q, err := in.queueVar(st.Args[0])
		if err != nil {
			return err
		}
		return in.println(q.Len())
	}})
	m.Put("print", command{1, 1, func(in *Interpreter, st Statement) error {
		q, err := in.queueVar(st.Args[0])
		if err != nil {
			return err
		}
		return q.Print(in.out)
	}})
	m.Put("list", command{1, 1, func(in *Interpreter, st Statement) error {
		q, err := in.queueVar(st.Args[0])
		if err != nil {
			return err
		}
		return in.printList(q.All())
	}})
	m.Put("iter", command{1, 1, func(in *Interpreter, st Statement) error {
		it, err := in.iterable(st.Args[0])
		if err != nil {
			return err
		}
		return in.printList(produce(it))
	}})
	m.Put("reverse", command{1, 1, func(in *Interpreter, st Statement) error {
		c, err := in.lookup(st.Args[0])
		if err != nil {
			return err
		}
		q, ok := c.(*chain.Queue[string])
		if !ok {
			return st.Errorf("%s can not be iterated in reverse", st.Args[0].image)
		}
		return in.printList(produce(q.ReverseIterator()))
	}})

	m.Put("map", command{1, 3, func(in *Interpreter, st Statement) error {
		n, err := name(st.Args[0])
		if err != nil {
			return err
		}
		hm := hashMap.New[string]()
		switch len(st.Args) {
		case 2:
			return st.Errorf("map needs a key and a value")
		case 3:
			if err := hm.PutKey(key(st.Args[1]), st.Args[2].image); err != nil {
				return st.EnhanceErrorf(err, "could not create map %s", n)
			}
		}
		in.vars.Put(n, hm)
		return nil
	}})
	m.Put("put", command{3, 3, func(in *Interpreter, st Statement) error {
		hm, err := in.mapVar(st.Args[0])
		if err != nil {
			return err
		}
		if err := hm.PutKey(key(st.Args[1]), st.Args[2].image); err != nil {
			return st.EnhanceErrorf(err, "could not put into %s", st.Args[0].image)
		}
		return nil
	}})
	m.Put("get", command{2, 2, func(in *Interpreter, st Statement) error {
		hm, err := in.mapVar(st.Args[0])
		if err != nil {
			return err
		}
		return in.printOpt(hm.GetKey(key(st.Args[1])))
	}})
	m.Put("contains", command{2, 2, func(in *Interpreter, st Statement) error {
		hm, err := in.mapVar(st.Args[0])
		if err != nil {
			return err
		}
		return in.println(hm.ContainsKey(key(st.Args[1])))
	}})
	m.Put("replace", command{3, 3, func(in *Interpreter, st Statement) error {
		hm, err := in.mapVar(st.Args[0])
		if err != nil {
			return err
		}
		return in.printOpt(hm.ReplaceKey(key(st.Args[1]), st.Args[2].image))
	}})
	m.Put("size", command{1, 1, func(in *Interpreter, st Statement) error {
		hm, err := in.mapVar(st.Args[0])
		if err != nil {
			return err
		}
		return in.println(hm.Size())
	}})
	m.Put("empty", command{1, 1, func(in *Interpreter, st Statement) error {
		hm, err := in.mapVar(st.Args[0])
		if err != nil {
			return err
		}
		return in.println(hm.IsEmpty())
	}})
	m.Put("stats", command{1, 1, func(in *Interpreter, st Statement) error {
		hm, err := in.mapVar(st.Args[0])
		if err != nil {
			return err
		}
		var b strings.Builder
		for i, l := range hm.Buckets() {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(strconv.Itoa(i) + ":" + strconv.Itoa(l))
		}
		return in.println(b.String())
	}})
	return m
}

// Commands returns the names of all known commands
func Commands() []string {
	var names []string
	commandTable().Iter(func(key string, c command) bool {
		names = append(names, key)
		return true
	})
	sort.Strings(names)
	return names
}
