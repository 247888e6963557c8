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

// Package main hosts the chemid CLI entrypoint and command graph.
//
// The Cobra command tree reads candidates from arguments, files or stdin,
// runs them through the registry package and renders the verdicts as a
// table, JSON, YAML or plain text. Configuration resolution and logger setup
// live in the shared command context so subcommands only deal with input and
// output.
package main
