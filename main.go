package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/dataset/dataset"
	"github.com/tuannh982/dataset/store"
	"github.com/tuannh982/dataset/utils/collections"
)

type setStore = *store.Data[collections.Set[int]]

func main() {
	logger := log.WithFields(log.Fields{"set": "demo"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetLevel(log.InfoLevel)

	hooks := dataset.HookFuncs[int, setStore]{
		Add: func(value int, data setStore) {
			logger.Info("added ", value, ", size=", data.Value().Size())
		},
		Delete: func(value int, success bool, _ setStore) {
			logger.Info("deleted ", value, ", success=", success)
		},
		Clear: func(setStore) {
			logger.Info("cleared")
		},
	}
	s, err := dataset.New(dataset.Config[int, setStore]{
		InitialElements: []int{0, 27, 37, 47},
		StoreFactory: func(seed collections.Set[int]) setStore {
			d := store.NewData(seed)
			d.SetTag("owner", "demo")
			return d
		},
		Hooks:  dataset.Chain[int, setStore](dataset.NewLogHooks[int, setStore](logger), hooks),
		Logger: logger,
	})
	if err != nil {
		logger.Fatal(err)
	}
	logger.Info("data ", s.Data())
	logger.Info("size ", s.Size())
	logger.Info("has 27 ", s.Has(27))
	s.Add(57)
	s.ForEach(func(v int) {
		logger.Info("value ", v)
	})
	logger.Info("snapshot ", s.Value())
	s.Delete(0)
	s.Clear()
	logger.Info("size ", s.Size())
}
