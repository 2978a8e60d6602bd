// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conffs

import (
	"reflect"

	"github.com/imdario/mergo"
	"github.com/wrgl/csvcmp/pkg/conf"
)

// ptrTransformer makes a set pointer to a non-struct value (e.g. *bool)
// override the destination even when it points to a zero value
type ptrTransformer struct{}

func (t *ptrTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ.Kind() == reflect.Ptr && typ.Elem().Kind() != reflect.Struct {
		return func(dst, src reflect.Value) error {
			if dst.CanSet() && !src.IsNil() {
				dst.Set(src)
			}
			return nil
		}
	}
	return nil
}

func mergeConfig(dst, src *conf.Config) error {
	return mergo.Merge(dst, src, mergo.WithOverride, mergo.WithTransformers(&ptrTransformer{}))
}

// aggregateConfig merges system, global and local configs, later ones
// taking precedence
func (s *Store) aggregateConfig() (*conf.Config, error) {
	sysConfig, err := s.readConfig(systemConfigPath())
	if err != nil {
		return nil, err
	}
	fp, err := globalConfigPath()
	if err != nil {
		return nil, err
	}
	globalConfig, err := s.readConfig(fp)
	if err != nil {
		return nil, err
	}
	localConfig, err := s.readConfig(localPath(s.rootDir))
	if err != nil {
		return nil, err
	}
	if err = mergeConfig(globalConfig, localConfig); err != nil {
		return nil, err
	}
	if err = mergeConfig(sysConfig, globalConfig); err != nil {
		return nil, err
	}
	return sysConfig, nil
}
