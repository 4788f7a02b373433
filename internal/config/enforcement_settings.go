// Copyright 2024 Arvid Ryndal <arvid@ryndal.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"reflect"
	"slices"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

var InsecureNetworks = []string{ // nolint: gochecknoglobals
	"0.0.0.0/0",
	"0/0",
	"0000:0000:0000:0000:0000:0000:0000:0000/0",
	"::/0",
}

type EnforcementSettings struct {
	EnforceSecureTrustedProxies bool
	EnforceIngressTLS           bool
	EnforceEgressTLS            bool
}

func (v EnforcementSettings) Tag() string { return "enforced" }

func (v EnforcementSettings) AlwaysValidate() bool { return true }

func (v EnforcementSettings) Validate(fl validator.FieldLevel) bool { // nolint: cyclop
	switch fl.Param() {
	case "istls":
		if !v.EnforceEgressTLS {
			return true
		}

		return strings.HasPrefix(fl.Field().String(), "https://")
	case "notnil":
		if !v.EnforceIngressTLS {
			return true
		}

		return fl.Field().Kind() == reflect.Struct
	case "false":
		if !v.EnforceEgressTLS {
			return true
		}

		return !fl.Field().Bool()
	case "secure_networks":
		if !v.EnforceSecureTrustedProxies {
			return true
		}

		for i := range fl.Field().Len() {
			elem := fl.Field().Index(i)
			if slices.Contains(InsecureNetworks, elem.String()) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func (v EnforcementSettings) MessageTemplate() string { return "{0} {1}" }

func (v EnforcementSettings) Translate(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(fe.Tag(), fe.Namespace(), v.errorMessage(fe.Param()))
	if err != nil {
		return fe.Error()
	}

	return msg
}

func (v EnforcementSettings) errorMessage(param string) string {
	switch param {
	case "notnil":
		return "must be configured"
	case "istls":
		return "scheme must be https"
	case "false":
		return "must be false"
	case "secure_networks":
		return "contains insecure networks"
	default:
		return "parameter is unknown"
	}
}
