/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

const (
	defaultConfigPath = "~/.config/chemid/config.toml"
	defaultOutput     = OutputTable
	defaultLogLevel   = "warn"

	// AsOfLayout is the layout of the as_of key and the --as-of flag.
	AsOfLayout = "2006-01-02"
)

// Output formats understood by the CLI.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputPlain = "plain"
)

// Outputs lists every accepted output format.
func Outputs() []string {
	return []string{OutputTable, OutputJSON, OutputYAML, OutputPlain}
}

// Default returns a Config populated with repository defaults. AsOf and
// Schemes stay empty, meaning "today" and "every scheme".
func Default() Config {
	return Config{
		Output:   defaultOutput,
		LogLevel: defaultLogLevel,
	}
}
