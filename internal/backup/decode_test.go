// Licensed to The Moov Authors under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. The Moov Authors licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package backup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	body := []byte(`{"name":"caf` + "\xe9" + `"}`)

	// no charset, stored verbatim
	out, err := decodeBody("application/json", body)
	require.NoError(t, err)
	require.Equal(t, body, out)

	out, err = decodeBody("", body)
	require.NoError(t, err)
	require.Equal(t, body, out)

	// latin-1 is converted to UTF-8
	out, err = decodeBody("application/json; charset=ISO-8859-1", body)
	require.NoError(t, err)
	require.Equal(t, `{"name":"café"}`, string(out))

	// UTF-8 and unknown charsets pass through
	utf8Body := []byte(`{"name":"café"}`)
	out, err = decodeBody("application/json; charset=utf-8", utf8Body)
	require.NoError(t, err)
	require.Equal(t, utf8Body, out)

	out, err = decodeBody("application/json; charset=not-a-charset", body)
	require.NoError(t, err)
	require.Equal(t, body, out)

	// malformed Content-Type
	out, err = decodeBody("application/json; charset", body)
	require.NoError(t, err)
	require.Equal(t, body, out)
}
