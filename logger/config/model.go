/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package config

import "os"

// OptionsStd configures the console hook (hookstderr).
type OptionsStd struct {
	// DisableStandard disables this hook entirely; New returns (nil, nil).
	DisableStandard bool `mapstructure:"disableStandard" json:"disableStandard" yaml:"disableStandard"`

	// DisableColor strips ANSI color sequences from the hook's output.
	DisableColor bool `mapstructure:"disableColor" json:"disableColor" yaml:"disableColor"`

	// DisableStack filters the stack field out of every entry.
	DisableStack bool `mapstructure:"disableStack" json:"disableStack" yaml:"disableStack"`

	// DisableTimestamp filters the time field out of every entry.
	DisableTimestamp bool `mapstructure:"disableTimestamp" json:"disableTimestamp" yaml:"disableTimestamp"`

	// EnableTrace keeps caller/file/line fields instead of filtering them.
	EnableTrace bool `mapstructure:"enableTrace" json:"enableTrace" yaml:"enableTrace"`

	// EnableAccessLog switches the hook to message-only mode, ignoring
	// fields and formatter - used for the REPL's command transcript.
	EnableAccessLog bool `mapstructure:"enableAccessLog" json:"enableAccessLog" yaml:"enableAccessLog"`
}

// OptionsFile configures the file hook, which appends to a single file
// and does not rotate it.
type OptionsFile struct {
	OptionsStd `mapstructure:",squash"`

	// Filepath is the target log file; required.
	Filepath string `mapstructure:"filepath" json:"filepath" yaml:"filepath"`

	// Create opens the file with O_CREATE, creating it if missing.
	Create bool `mapstructure:"create" json:"create" yaml:"create"`

	// CreatePath creates the parent directory tree if missing.
	CreatePath bool `mapstructure:"createPath" json:"createPath" yaml:"createPath"`

	// FileMode is the permission bits used when creating Filepath. Zero
	// defaults to 0644 in hookfile.New.
	FileMode os.FileMode `mapstructure:"fileMode" json:"fileMode" yaml:"fileMode"`

	// PathMode is the permission bits used when creating missing parent
	// directories. Zero defaults to 0755 in hookfile.New.
	PathMode os.FileMode `mapstructure:"pathMode" json:"pathMode" yaml:"pathMode"`

	// LogLevel restricts the hook to these level names (level.Parse). Empty
	// means every level.
	LogLevel []string `mapstructure:"logLevel" json:"logLevel" yaml:"logLevel"`
}
