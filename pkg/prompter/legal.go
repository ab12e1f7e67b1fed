// Package prompter provides version and legal information for prompter.
package prompter

// LegalNotice provides license notices for prompter itself and any third-party
// dependencies.
const LegalNotice = `prompter

DISCLAIMER OF WARRANTY. This software is provided "as is." The authors make no
express or implied warranty as to its merchantability or fitness for any
particular purpose, and you accept all risk should you decide to use this work
in any form.

This work is dedicated to the public domain.


================================================================================
prompter depends on the following third-party software:
================================================================================

Go, the Go standard library, and the Go crypto, sys, term, and text
subrepositories.

https://golang.org/
https://github.com/golang/
golang.org/x/text

Copyright (c) 2009 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version). A templated
version of this license can be found online at
https://opensource.org/licenses/BSD-3-Clause.

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Copyright (c) 2015, Dave Cheney <dave@cheney.net>
All rights reserved.

Used under the terms of the 2-Clause BSD License. A copy of this license can be
found online at https://opensource.org/licenses/BSD-2-Clause.

--------------------------------------------------------------------------------

Cobra

https://github.com/spf13/cobra

Copyright 2013 Steve Francia <spf@spf13.com>

Used under the terms of the Apache License, Version 2.0. A copy of this license
can be found online at http://www.apache.org/licenses/LICENSE-2.0.

--------------------------------------------------------------------------------

pflag

https://github.com/spf13/pflag

Copyright (c) 2012 Alex Ogier. All rights reserved.
Copyright (c) 2012 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version).

--------------------------------------------------------------------------------

mousetrap

https://github.com/inconshreveable/mousetrap

Copyright 2014 Alan Shreve

Used under the terms of the Apache License, Version 2.0.

--------------------------------------------------------------------------------

color

https://github.com/fatih/color

Copyright (c) 2013 Fatih Arslan

Used under the terms of the MIT License. A copy of this license can be found
online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

go-colorable and go-isatty

https://github.com/mattn/go-colorable
https://github.com/mattn/go-isatty

Copyright (c) 2016 Yasuhiro Matsumoto
Copyright (c) Yasuhiro MATSUMOTO <mattn.jp@gmail.com>

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

gopass

https://github.com/mutagen-io/gopass

Original version available at https://github.com/howeyc/gopass.

Copyright (c) 2012 Chris Howey

Used under the terms of the ISC License. A copy of this license can be found
online at https://opensource.org/licenses/ISC.

--------------------------------------------------------------------------------

GoDotEnv

https://github.com/joho/godotenv

Copyright (c) 2013 John Barton

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

go-humanize

https://github.com/dustin/go-humanize

Copyright (c) 2005-2008 Dustin Sallings <dustin@spy.net>

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

decimal

https://github.com/shopspring/decimal

Copyright (c) 2015 Spring, Inc.
Copyright (c) 2013 Oguz Bilgic

Used under the terms of the MIT License.

--------------------------------------------------------------------------------

YAML support for the Go language

https://gopkg.in/yaml.v2

Copyright (c) 2011-2019 Canonical Ltd
Copyright (c) 2006-2011 Kirill Simonov

Used under the terms of the Apache License, Version 2.0 and the MIT License.
`
