package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownGame is returned when a token is not part of the game enumeration.
	ErrUnknownGame = zerr.New("unrecognized game")

	// ErrUnknownProjectType is returned when a project type is not one of the supported toolchains.
	ErrUnknownProjectType = zerr.New("unrecognized project type")

	// ErrInvalidTaskName is returned when a task name is empty or contains whitespace.
	ErrInvalidTaskName = zerr.New("invalid task name")

	// ErrMalformedDirective is returned when the first line of a corpus file is not a games directive.
	ErrMalformedDirective = zerr.New("malformed corpus directive")

	// ErrConfigInvalid is returned when an implementation configuration is missing required fields
	// or declares values outside the allowed enumerations.
	ErrConfigInvalid = zerr.New("invalid implementation configuration")

	// ErrConfigReadFailed is returned when an implementation configuration cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read implementation configuration")

	// ErrConfigParseFailed is returned when an implementation configuration is not syntactically valid.
	ErrConfigParseFailed = zerr.New("failed to parse implementation configuration")

	// ErrConfigNotFound is returned when an implementation directory has no configuration file.
	ErrConfigNotFound = zerr.New("no babblewitz.config.toml or babblewitz.config.yaml found")

	// ErrNoImplementations is returned when no implementation could be discovered.
	ErrNoImplementations = zerr.New("no valid implementations found")

	// ErrNoImplementationsForTask is returned when no implementation declares support for a task.
	ErrNoImplementationsForTask = zerr.New("no implementations found for task")

	// ErrCorpusLoadFailed is returned when the corpus directory cannot be walked or read.
	ErrCorpusLoadFailed = zerr.New("failed to load corpus")

	// ErrCorpusEmpty is returned when the corpus holds no usable file.
	ErrCorpusEmpty = zerr.New("no corpus files found")

	// ErrSaveFileReadFailed is returned when a save file cannot be read or decompressed.
	ErrSaveFileReadFailed = zerr.New("failed to read save file")

	// ErrInvalidCommand is returned when a build or run command cannot be split into arguments.
	ErrInvalidCommand = zerr.New("invalid command line")

	// ErrBuildFailed is returned by the build use case when at least one implementation failed to build.
	ErrBuildFailed = zerr.New("implementation build failed")

	// ErrToolMissing is returned when the external asset synchronization tool is not available.
	ErrToolMissing = zerr.New("rclone command failed, ensure rclone is installed and available in PATH")

	// ErrStoreOpenFailed is returned when the results database cannot be opened or migrated.
	ErrStoreOpenFailed = zerr.New("failed to open results database")

	// ErrStoreWriteFailed is returned when a run cannot be persisted.
	ErrStoreWriteFailed = zerr.New("failed to persist run results")

	// ErrUnknownFormat is returned when a report format is not supported.
	ErrUnknownFormat = zerr.New("unknown report format, expected 'table', 'github' or 'json'")
)
