// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

// LookupIoSet returns the named IoSet from the default catalog.
func LookupIoSet(family Family, sercom int, name string) (*IoSet, error) {
	return DefaultCatalog().IoSet(family, sercom, name)
}

// Configure constructs a Configuration from an IoSet in the default catalog.
//
// It is equivalent to looking up the IoSet with LookupIoSet and passing it
// to NewConfig.
func Configure(family Family, sercom int, ioset string, options ...NewConfigOption) (*Configuration, error) {
	s, err := LookupIoSet(family, sercom, ioset)
	if err != nil {
		return nil, err
	}
	return NewConfig(s, options...)
}
