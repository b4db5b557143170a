// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
func ParseConfigurationFile(fileName string, config interface{}) error {
	return ParseConfigurationFileWithVariables(fileName, nil, config)
}

// ParseConfigurationFileWithVariables - as ParseConfigurationFile
// but also set each variable as a global string before execution
func ParseConfigurationFileWithVariables(fileName string, variables map[string]string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	for name, value := range variables {
		L.SetGlobal(name, lua.LString(value))
	}

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
